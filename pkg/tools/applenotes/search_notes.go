package applenotes

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
	"github.com/gobwas/glob"
)

// SearchNotesTool finds notes whose name or body contains a query.
type SearchNotesTool struct {
	service Service
	limiter *ratelimit.Limiter
}

// NewSearchNotesTool creates a new SearchNotesTool.
func NewSearchNotesTool(service Service, limiter *ratelimit.Limiter) *SearchNotesTool {
	return &SearchNotesTool{
		service: service,
		limiter: limiter,
	}
}

// Name returns the tool name.
func (t *SearchNotesTool) Name() string {
	return "search_notes"
}

// Description returns the tool description.
func (t *SearchNotesTool) Description() string {
	return "Search notes by a text query matched against names and bodies, with an optional glob pattern applied to matching titles."
}

// Schema returns the JSON schema for the tool's input parameters.
func (t *SearchNotesTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Text to search for in note names and bodies",
			},
			"title_pattern": map[string]interface{}{
				"type":        "string",
				"description": "Glob pattern to filter matching note titles, e.g. 'Meeting *' (optional)",
			},
		},
		[]string{"query"},
	)
}

// Execute runs the search.
func (t *SearchNotesTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input struct {
		XMLName      xml.Name `xml:"arguments"`
		Query        string   `xml:"query"`
		TitlePattern string   `xml:"title_pattern"`
	}

	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Query == "" {
		return "", nil, fmt.Errorf("missing required parameter: query")
	}

	var pattern glob.Glob
	if input.TitlePattern != "" {
		compiled, err := glob.Compile(input.TitlePattern)
		if err != nil {
			return "", nil, fmt.Errorf("invalid title_pattern: %w", err)
		}
		pattern = compiled
	}

	if err := allow(t.limiter, t.Name()); err != nil {
		return "", nil, err
	}

	names, result := t.service.Search(ctx, input.Query)
	if result.Kind == notes.KindFailed {
		return "", nil, failure(result)
	}

	if pattern != nil {
		filtered := make([]string, 0, len(names))
		for _, name := range names {
			if pattern.Match(name) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}

	metadata := map[string]interface{}{
		"query":       input.Query,
		"match_count": len(names),
	}

	if len(names) == 0 {
		return fmt.Sprintf("No notes found matching %q", input.Query), metadata, nil
	}

	var message strings.Builder
	fmt.Fprintf(&message, "Found %d note(s) matching %q:\n", len(names), input.Query)
	for _, name := range names {
		message.WriteString("- " + name + "\n")
	}
	return strings.TrimRight(message.String(), "\n"), metadata, nil
}
