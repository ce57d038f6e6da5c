package botbuilder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/botbuilder/sdk-go/internal/api"
)

const defaultUploadName = "file"

// KnowledgeService handles knowledge base operations.
type KnowledgeService struct {
	api *api.Client
}

// List returns knowledge documents.
func (s *KnowledgeService) List(ctx context.Context, filters Filters) ([]Object, error) {
	docs, err := s.api.ListDocuments(ctx, filters.query())
	if err != nil {
		return nil, err
	}
	return toObjects(docs), nil
}

// Upload uploads a document as multipart/form-data. The content of file is
// sent as the "file" part; params.Category and params.Metadata become text
// fields.
func (s *KnowledgeService) Upload(ctx context.Context, file io.Reader, params UploadParams) (Object, error) {
	name := params.FileName
	if name == "" {
		name = defaultUploadName
	}
	doc, err := s.api.UploadDocument(ctx, &api.File{
		Param:  "file",
		Name:   name,
		Reader: file,
	}, params.form())
	return Object(doc), err
}

// UploadFile uploads the document at path. FileName defaults to the base
// name of path.
func (s *KnowledgeService) UploadFile(ctx context.Context, path string, params UploadParams) (Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if params.FileName == "" {
		params.FileName = filepath.Base(path)
	}
	return s.Upload(ctx, f, params)
}

// Delete deletes a document.
func (s *KnowledgeService) Delete(ctx context.Context, documentID string) (Object, error) {
	result, err := s.api.DeleteDocument(ctx, documentID)
	return Object(result), err
}
