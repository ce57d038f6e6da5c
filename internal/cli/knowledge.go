package cli

import (
	"context"

	"github.com/spf13/cobra"

	botbuilder "github.com/botbuilder/sdk-go"
)

func newKnowledgeCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "Manage knowledge base documents",
	}

	cmd.AddCommand(knowledgeListCommand(s))
	cmd.AddCommand(knowledgeUploadCommand(s))
	cmd.AddCommand(knowledgeDeleteCommand(s))

	return cmd
}

func knowledgeListCommand(s *session) *cobra.Command {
	var filters map[string]string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Args:  cobra.NoArgs,
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, _ []string) (any, error) {
			return c.Knowledge.List(ctx, filters)
		}),
	}
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "Query parameter as key=value (repeatable)")

	return cmd
}

func knowledgeUploadCommand(s *session) *cobra.Command {
	var (
		fileName string
		category string
		metadata map[string]string
	)

	cmd := &cobra.Command{
		Use:   "upload PATH",
		Short: "Upload a document",
		Long:  "Upload a document. Use - as PATH to read the document from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			params := botbuilder.UploadParams{
				FileName: fileName,
				Category: category,
				Metadata: metadata,
			}
			if args[0] == "-" {
				return c.Knowledge.Upload(ctx, s.streams.Stdin, params)
			}
			return c.Knowledge.UploadFile(ctx, args[0], params)
		}),
	}
	cmd.Flags().StringVar(&fileName, "filename", "", "File name sent with the upload (default: base name of PATH)")
	cmd.Flags().StringVar(&category, "category", "", "Document category")
	cmd.Flags().StringToStringVar(&metadata, "meta", nil, "Metadata form field as key=value (repeatable)")

	return cmd
}

func knowledgeDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOCUMENT_ID",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(ctx context.Context, c *botbuilder.Client, args []string) (any, error) {
			return c.Knowledge.Delete(ctx, args[0])
		}),
	}
}
