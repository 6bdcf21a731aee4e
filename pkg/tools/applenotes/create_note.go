package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// CreateNoteTool creates new notes in the Notes application.
type CreateNoteTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewCreateNoteTool creates a new CreateNoteTool.
func NewCreateNoteTool(service Service, limiter *ratelimit.Limiter) *CreateNoteTool {
	return &CreateNoteTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *CreateNoteTool) Name() string {
	return "create_note"
}

// Description returns the tool description.
func (t *CreateNoteTool) Description() string {
	return "Create a new note with a name and body, optionally inside a named folder and account."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *CreateNoteTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the note to create",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "Body content of the note",
			},
			"folder": map[string]interface{}{
				"type":        "string",
				"description": "Folder to create the note in (optional)",
			},
			"account": map[string]interface{}{
				"type":        "string",
				"description": "Account to create the note in (optional, defaults to the configured account)",
			},
		},
		[]string{"name", "body"},
	)
}

// Execute creates the note.
func (t *CreateNoteTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName xml.Name `xml:"arguments"`
		Name    string   `xml:"name"`
		Body    string   `xml:"body"`
		Folder  string   `xml:"folder"`
		Account string   `xml:"account"`
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

	result := t.service.Create(ctx, notes.CreateParams{
		Name:    input.Name,
		Body:    input.Body,
		Folder:  input.Folder,
		Account: input.Account,
	})

	metadata := map[string]interface{}{
		"note_name": input.Name,
		"folder":    input.Folder,
	}

	switch result.Kind {
	case notes.KindOK:
		return fmt.Sprintf("Note %q created successfully", input.Name), metadata, nil
	case notes.KindFolderNotFound:
		return fmt.Sprintf("Folder %q not found", input.Folder), metadata, nil
	case notes.KindNotFound:
		return fmt.Sprintf("Note %q not found", input.Name), metadata, nil
	default:
		return "", nil, failure(result)
	}
}
