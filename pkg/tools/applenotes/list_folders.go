package applenotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// ListFoldersTool enumerates folder names.
type ListFoldersTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewListFoldersTool creates a new ListFoldersTool.
func NewListFoldersTool(service Service, limiter *ratelimit.Limiter) *ListFoldersTool {
	return &ListFoldersTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *ListFoldersTool) Name() string {
	return "list_folders"
}

// Description returns the tool description.
func (t *ListFoldersTool) Description() string {
	return "List the folder names available in the configured account."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *ListFoldersTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute lists the folders.
func (t *ListFoldersTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	names, result := t.service.ListFolders(ctx)
	if result.Kind != notes.KindOK {
		return "", nil, failure(result)
	}

	metadata := map[string]interface{}{
		"folder_count": len(names),
	}
	if len(names) == 0 {
		return "No folders found", metadata, nil
	}
	return fmt.Sprintf("Folders:\n- %s", strings.Join(names, "\n- ")), metadata, nil
}
