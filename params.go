package botbuilder

import "encoding/json"

// Fields is an open set of JSON body fields. It carries keys the SDK has no
// typed field for, so new server-side fields can be sent without an upgrade.
type Fields map[string]any

// Filters are sent as URL query parameters on list and analytics calls.
type Filters map[string]string

// BotParams is the body of Bots.Create and Bots.Update.
type BotParams struct {
	Name        string
	Description string
	// Extra holds additional fields. Name and Description take precedence
	// over Extra keys of the same name when they are non-empty.
	Extra Fields
}

// MarshalJSON encodes the params as one flat JSON object.
func (p BotParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

func (p BotParams) fields() Fields {
	f := p.Extra.clone()
	f.setString("name", p.Name)
	f.setString("description", p.Description)
	return f
}

// MessageParams is the body of Messages.Send.
type MessageParams struct {
	BotID   string
	Message string
	UserID  string
	// Extra holds additional fields such as conversation metadata.
	Extra Fields
}

// MarshalJSON encodes the params as one flat JSON object.
func (p MessageParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

func (p MessageParams) fields() Fields {
	f := p.Extra.clone()
	f.setString("bot_id", p.BotID)
	f.setString("message", p.Message)
	f.setString("user_id", p.UserID)
	return f
}

// WebhookParams is the body of Webhooks.Create and Webhooks.Update.
type WebhookParams struct {
	URL    string
	Events []string
	Extra  Fields
}

// MarshalJSON encodes the params as one flat JSON object.
func (p WebhookParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

func (p WebhookParams) fields() Fields {
	f := p.Extra.clone()
	f.setString("url", p.URL)
	if len(p.Events) > 0 {
		f["events"] = p.Events
	}
	return f
}

// UploadParams describes a knowledge document upload. Everything except
// FileName is sent as a multipart text field.
type UploadParams struct {
	// FileName is the filename of the "file" part. Default: "file", or the
	// base name of the path for UploadFile.
	FileName string
	Category string
	Metadata map[string]string
}

func (p UploadParams) form() map[string]string {
	form := make(map[string]string, len(p.Metadata)+1)
	for k, v := range p.Metadata {
		form[k] = v
	}
	if p.Category != "" {
		form["category"] = p.Category
	}
	return form
}

func (f Fields) clone() Fields {
	out := make(Fields, len(f)+3)
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (f Fields) setString(key, value string) {
	if value != "" {
		f[key] = value
	}
}

func (f Filters) query() map[string]string {
	if len(f) == 0 {
		return nil
	}
	return map[string]string(f)
}
