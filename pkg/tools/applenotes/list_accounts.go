package applenotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// ListAccountsTool enumerates account names.
type ListAccountsTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewListAccountsTool creates a new ListAccountsTool.
func NewListAccountsTool(service Service, limiter *ratelimit.Limiter) *ListAccountsTool {
	return &ListAccountsTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *ListAccountsTool) Name() string {
	return "list_accounts"
}

// Description returns the tool description.
func (t *ListAccountsTool) Description() string {
	return "List the account names known to the Notes application."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *ListAccountsTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute lists the accounts.
func (t *ListAccountsTool) Execute(ctx context.Context, _ []byte) (string, map[string]interface{}, error) {
	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	names, result := t.service.ListAccounts(ctx)
	if result.Kind != notes.KindOK {
		return "", nil, failure(result)
	}

	metadata := map[string]interface{}{
		"account_count": len(names),
	}
	if len(names) == 0 {
		return "No accounts found", metadata, nil
	}
	return fmt.Sprintf("Accounts:\n- %s", strings.Join(names, "\n- ")), metadata, nil
}
