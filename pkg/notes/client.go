package notes

import (
	"context"

	"github.com/entrhq/quill/pkg/applescript"
	"github.com/entrhq/quill/pkg/executor/osascript"
	"github.com/entrhq/quill/pkg/logging"
)

// Runner abstracts the script executor so operations can be tested against a
// fake without spawning processes.
type Runner interface {
	Execute(ctx context.Context, script string) osascript.Outcome
}

// Client implements note operations against the Notes application. A Client
// holds no mutable state; concurrent calls run independent scripts.
type Client struct {
	runner         Runner
	logger         *logging.Logger
	defaultAccount string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultAccount sets the account used as the creation fallback scope
// when a caller does not name one.
func WithDefaultAccount(account string) ClientOption {
	return func(c *Client) {
		c.defaultAccount = account
	}
}

// WithLogger installs a debug logger. Raw interpreter diagnostics are
// written here and nowhere else.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client backed by the given runner.
func NewClient(runner Runner, opts ...ClientOption) *Client {
	c := &Client{runner: runner}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateParams describes a note to create.
type CreateParams struct {
	Name    string
	Body    string
	Folder  string
	Account string
}

// CreateStrategy is the ordered list of script variants attempted for one
// create call. The sequence stops at the first variant whose outcome is
// anything other than a hard process failure; a sentinel miss (for example a
// missing folder) is a definitive answer, not a reason to try the next
// variant.
type CreateStrategy []string

// NewCreateStrategy builds the variant list for the given parameters. A
// caller-named account pins creation to a single account-scoped variant.
// Without one, the simple default-location variant runs first, followed by a
// variant scoped to the fallback account when configured.
func NewCreateStrategy(p CreateParams, fallbackAccount string) CreateStrategy {
	if p.Account != "" {
		return CreateStrategy{applescript.CreateNote(p.Account, p.Folder, p.Name, p.Body)}
	}
	strategy := CreateStrategy{applescript.CreateNote("", p.Folder, p.Name, p.Body)}
	if fallbackAccount != "" {
		strategy = append(strategy, applescript.CreateNote(fallbackAccount, p.Folder, p.Name, p.Body))
	}
	return strategy
}

// Create makes a new note, walking the creation strategy in order. Only a
// folder-scoped create can emit a sentinel.
func (c *Client) Create(ctx context.Context, p CreateParams) Result {
	set := noSentinels
	if p.Folder != "" {
		set = sentinelSet{Folder: true}
	}

	var result Result
	for _, script := range NewCreateStrategy(p, c.defaultAccount) {
		result = c.run(ctx, script, set)
		if result.Kind != KindFailed {
			return result
		}
	}
	return result
}

// Get returns the body of the named note. An empty folder searches the whole
// default scope.
func (c *Client) Get(ctx context.Context, name, folder string) Result {
	return c.run(ctx, applescript.GetNoteBody(c.defaultAccount, folder, name), locateSet(folder))
}

// Update replaces the body of the named note.
func (c *Client) Update(ctx context.Context, name, folder, body string) Result {
	return c.run(ctx, applescript.UpdateNoteBody(c.defaultAccount, folder, name, body), locateSet(folder))
}

// Delete removes the named note.
func (c *Client) Delete(ctx context.Context, name, folder string) Result {
	return c.run(ctx, applescript.DeleteNote(c.defaultAccount, folder, name), locateSet(folder))
}

// Move relocates the named note into the target folder. A missing target
// folder decodes as KindFolderNotFound, taking priority over a missing note.
func (c *Client) Move(ctx context.Context, name, targetFolder string) Result {
	return c.run(ctx, applescript.MoveNote(c.defaultAccount, name, targetFolder),
		sentinelSet{Folder: true, Note: true})
}

// Search returns the names of notes whose name or body contains the query.
// No matches yield an empty slice with an OK result. Search scripts emit no
// sentinels; a match that looks like one is a real name.
func (c *Client) Search(ctx context.Context, query string) ([]string, Result) {
	return c.runList(ctx, applescript.SearchNotes(c.defaultAccount, query), noSentinels)
}

// ListNotes enumerates note names, scoped to a folder when one is given.
func (c *Client) ListNotes(ctx context.Context, folder string) ([]string, Result) {
	set := noSentinels
	if folder != "" {
		set = sentinelSet{Folder: true}
	}
	return c.runList(ctx, applescript.ListNotes(c.defaultAccount, folder), set)
}

// ListFolders enumerates folder names.
func (c *Client) ListFolders(ctx context.Context) ([]string, Result) {
	return c.runList(ctx, applescript.ListFolders(c.defaultAccount), noSentinels)
}

// ListAccounts enumerates account names across the application.
func (c *Client) ListAccounts(ctx context.Context) ([]string, Result) {
	return c.runList(ctx, applescript.ListAccounts(), noSentinels)
}

func (c *Client) run(ctx context.Context, script string, set sentinelSet) Result {
	outcome := c.runner.Execute(ctx, script)
	if !outcome.Success && c.logger != nil {
		// The raw diagnostic stays here; callers only ever see the
		// generic failure reason.
		c.logger.Errorf("script execution failed: %s", outcome.Error)
	}
	return decode(outcome, set)
}

func (c *Client) runList(ctx context.Context, script string, set sentinelSet) ([]string, Result) {
	result := c.run(ctx, script, set)
	if !result.OK() {
		return nil, result
	}
	return splitList(result.Payload), result
}
