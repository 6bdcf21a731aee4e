package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// GetNoteTool reads a note's body by exact name.
type GetNoteTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewGetNoteTool creates a new GetNoteTool.
func NewGetNoteTool(service Service, limiter *ratelimit.Limiter) *GetNoteTool {
	return &GetNoteTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *GetNoteTool) Name() string {
	return "get_note"
}

// Description returns the tool description.
func (t *GetNoteTool) Description() string {
	return "Read the body of a note by exact name, optionally scoped to a folder. Can copy the body to the system clipboard."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *GetNoteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Exact name of the note to read",
			},
			"folder": map[string]interface{}{
				"type":        "string",
				"description": "Folder to search in (optional)",
			},
			"copy_to_clipboard": map[string]interface{}{
				"type":        "boolean",
				"description": "Copy the note body to the system clipboard (optional)",
			},
		},
		[]string{"name"},
	)
}

// Execute reads the note.
func (t *GetNoteTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName         xml.Name `xml:"arguments"`
		Name            string   `xml:"name"`
		Folder          string   `xml:"folder"`
		CopyToClipboard bool     `xml:"copy_to_clipboard"`
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

	result := t.service.Get(ctx, input.Name, input.Folder)

	metadata := map[string]interface{}{
		"note_name": input.Name,
		"folder":    input.Folder,
	}

	switch result.Kind {
	case notes.KindOK:
		metadata["body_length"] = len(result.Payload)
		if input.CopyToClipboard {
			if err := clipboard.WriteAll(result.Payload); err != nil {
				metadata["clipboard"] = "unavailable"
			} else {
				metadata["clipboard"] = "copied"
			}
		}
		return result.Payload, metadata, nil
	case notes.KindFolderNotFound:
		return fmt.Sprintf("Folder %q not found", input.Folder), metadata, nil
	case notes.KindNotFound:
		return fmt.Sprintf("Note %q not found", input.Name), metadata, nil
	default:
		return "", nil, failure(result)
	}
}
