package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// DeleteNoteTool deletes a note by exact name.
type DeleteNoteTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewDeleteNoteTool creates a new DeleteNoteTool.
func NewDeleteNoteTool(service Service, limiter *ratelimit.Limiter) *DeleteNoteTool {
	return &DeleteNoteTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *DeleteNoteTool) Name() string {
	return "delete_note"
}

// Description returns the tool description.
func (t *DeleteNoteTool) Description() string {
	return "Permanently delete a note located by exact name, optionally scoped to a folder."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *DeleteNoteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Exact name of the note to delete",
			},
			"folder": map[string]interface{}{
				"type":        "string",
				"description": "Folder to search in (optional)",
			},
		},
		[]string{"name"},
	)
}

// Execute deletes the note.
func (t *DeleteNoteTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName xml.Name `xml:"arguments"`
		Name    string   `xml:"name"`
		Folder  string   `xml:"folder"`
	}

	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Name == "" {
		return "", nil, fmt.Errorf("missing required parameter: name")
	}

	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	result := t.service.Delete(ctx, input.Name, input.Folder)

	metadata := map[string]interface{}{
		"note_name": input.Name,
		"folder":    input.Folder,
	}

	switch result.Kind {
	case notes.KindOK:
		return fmt.Sprintf("Note %q deleted", input.Name), metadata, nil
	case notes.KindFolderNotFound:
		return fmt.Sprintf("Folder %q not found", input.Folder), metadata, nil
	case notes.KindNotFound:
		return fmt.Sprintf("Note %q not found", input.Name), metadata, nil
	default:
		return "", nil, failure(result)
	}
}
