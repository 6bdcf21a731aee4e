package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// MoveNoteTool moves a note into a named folder.
type MoveNoteTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewMoveNoteTool creates a new MoveNoteTool.
func NewMoveNoteTool(service Service, limiter *ratelimit.Limiter) *MoveNoteTool {
	return &MoveNoteTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *MoveNoteTool) Name() string {
	return "move_note"
}

// Description returns the tool description.
func (t *MoveNoteTool) Description() string {
	return "Move a note located by exact name into a named folder."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *MoveNoteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Exact name of the note to move",
			},
			"target_folder": map[string]interface{}{
				"type":        "string",
				"description": "Folder to move the note into",
			},
		},
		[]string{"name", "target_folder"},
	)
}

// Execute moves the note.
func (t *MoveNoteTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName      xml.Name `xml:"arguments"`
		Name         string   `xml:"name"`
		TargetFolder string   `xml:"target_folder"`
	}

	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Name == "" {
		return "", nil, fmt.Errorf("missing required parameter: name")
	}
	if input.TargetFolder == "" {
		return "", nil, fmt.Errorf("missing required parameter: target_folder")
	}

	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	result := t.service.Move(ctx, input.Name, input.TargetFolder)

	metadata := map[string]interface{}{
		"note_name":     input.Name,
		"target_folder": input.TargetFolder,
	}

	switch result.Kind {
	case notes.KindOK:
		return fmt.Sprintf("Note %q moved to %q", input.Name, input.TargetFolder), metadata, nil
	case notes.KindFolderNotFound:
		return fmt.Sprintf("Folder %q not found", input.TargetFolder), metadata, nil
	case notes.KindNotFound:
		return fmt.Sprintf("Note %q not found", input.Name), metadata, nil
	default:
		return "", nil, failure(result)
	}
}
