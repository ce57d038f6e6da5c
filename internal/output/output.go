// Package output prints API results for the botbuilder command.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Printer writes values to w in one format.
type Printer struct {
	w      io.Writer
	format string
}

// New returns a printer for format.
func New(w io.Writer, format string) (*Printer, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return &Printer{w: w, format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// Print writes v followed by a newline.
func (p *Printer) Print(v any) error {
	if p.format == FormatYAML {
		return p.printYAML(v)
	}
	return p.printJSON(v)
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (p *Printer) printYAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
