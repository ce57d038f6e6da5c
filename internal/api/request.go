package api

import (
	"io"

	"github.com/botbuilder/sdk-go/internal/apierrors"
)

// Request describes one API call. It is built per call and not retained.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	// Body is encoded as JSON. Ignored when File is set.
	Body any
	// File turns the request into multipart/form-data; Form supplies the
	// remaining text fields.
	File *File
	Form map[string]string
	// Resource tags a resulting *apierrors.APIError for sentinel matching.
	Resource apierrors.ResourceType
}

// File is a multipart file part.
type File struct {
	Param  string
	Name   string
	Reader io.Reader
}
