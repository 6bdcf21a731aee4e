package applenotes

import (
	"github.com/entrhq/quill/pkg/agent/tools"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// Registry constructs and holds the note tool suite.
type Registry struct {
	service Service
	limiter *ratelimit.Limiter
	tools   []tools.Tool
}

// NewRegistry creates a registry over a notes service and a rate limiter.
// The limiter may be nil, in which case no budget is enforced.
func NewRegistry(service Service, limiter *ratelimit.Limiter) *Registry {
	return &Registry{
		service: service,
		limiter: limiter,
	}
}

// RegisterTools creates and returns all note tools.
func (r *Registry) RegisterTools() []tools.Tool {
	if len(r.tools) > 0 {
		return r.tools
	}

	r.tools = append(r.tools,
		NewCreateNoteTool(r.service, r.limiter),
		NewGetNoteTool(r.service, r.limiter),
		NewSearchNotesTool(r.service, r.limiter),
		NewEditNoteTool(r.service, r.limiter),
		NewDeleteNoteTool(r.service, r.limiter),
		NewMoveNoteTool(r.service, r.limiter),
		NewListNotesTool(r.service, r.limiter),
		NewListFoldersTool(r.service, r.limiter),
		NewListAccountsTool(r.service, r.limiter),
	)
	return r.tools
}

// Get returns the registered tool with the given name.
func (r *Registry) Get(name string) (tools.Tool, bool) {
	for _, tool := range r.RegisterTools() {
		if tool.Name() == name {
			return tool, true
		}
	}
	return nil, false
}
