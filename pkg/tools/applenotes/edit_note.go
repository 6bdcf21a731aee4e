package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// EditNoteTool replaces a note's body by exact name.
type EditNoteTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewEditNoteTool creates a new EditNoteTool.
func NewEditNoteTool(service Service, limiter *ratelimit.Limiter) *EditNoteTool {
	return &EditNoteTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *EditNoteTool) Name() string {
	return "edit_note"
}

// Description returns the tool description.
func (t *EditNoteTool) Description() string {
	return "Replace the body of a note located by exact name, optionally scoped to a folder."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *EditNoteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Exact name of the note to edit",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "New body content for the note",
			},
			"folder": map[string]interface{}{
				"type":        "string",
				"description": "Folder to search in (optional)",
			},
		},
		[]string{"name", "body"},
	)
}

// Execute updates the note body.
func (t *EditNoteTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName xml.Name `xml:"arguments"`
		Name    string   `xml:"name"`
		Body    string   `xml:"body"`
		Folder  string   `xml:"folder"`
	}

	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Name == "" {
		return "", nil, fmt.Errorf("missing required parameter: name")
	}
	if input.Body == "" {
		return "", nil, fmt.Errorf("missing required parameter: body")
	}

	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	result := t.service.Update(ctx, input.Name, input.Folder, input.Body)

	metadata := map[string]interface{}{
		"note_name": input.Name,
		"folder":    input.Folder,
	}

	switch result.Kind {
	case notes.KindOK:
		return fmt.Sprintf("Note %q updated successfully", input.Name), metadata, nil
	case notes.KindFolderNotFound:
		return fmt.Sprintf("Folder %q not found", input.Folder), metadata, nil
	case notes.KindNotFound:
		return fmt.Sprintf("Note %q not found", input.Name), metadata, nil
	default:
		return "", nil, failure(result)
	}
}
