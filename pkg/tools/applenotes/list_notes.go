package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// ListNotesTool enumerates note names, optionally scoped to a folder.
type ListNotesTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewListNotesTool creates a new ListNotesTool.
func NewListNotesTool(service Service, limiter *ratelimit.Limiter) *ListNotesTool {
	return &ListNotesTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *ListNotesTool) Name() string {
	return "list_notes"
}

// Description returns the tool description.
func (t *ListNotesTool) Description() string {
	return "List note names, optionally restricted to a named folder."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *ListNotesTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"folder": map[string]interface{}{
				"type":        "string",
				"description": "Folder to list notes from (optional, lists every note when omitted)",
			},
		},
		nil,
	)
}

// Execute lists the notes.
func (t *ListNotesTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName xml.Name `xml:"arguments"`
		Folder  string   `xml:"folder"`
	}

	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	names, result := t.service.ListNotes(ctx, input.Folder)

	metadata := map[string]interface{}{
		"folder": input.Folder,
	}

	switch result.Kind {
	case notes.KindOK:
		metadata["note_count"] = len(names)
		if len(names) == 0 {
			return "No notes found", metadata, nil
		}
		return "Notes:\n- " + strings.Join(names, "\n- "), metadata, nil
	case notes.KindFolderNotFound:
		return fmt.Sprintf("Folder %q not found", input.Folder), metadata, nil
	default:
		return "", nil, failure(result)
	}
}
