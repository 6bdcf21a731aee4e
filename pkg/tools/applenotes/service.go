package applenotes

import (
	"context"
	"errors"

	"github.com/entrhq/quill/pkg/notes"
	"github.com/entrhq/quill/pkg/ratelimit"
)

// Service is the subset of the notes client the tools consume. Tests
// substitute a fake; production wires *notes.Client.
type Service interface {
	Create(ctx context.Context, p notes.CreateParams) notes.Result
	Get(ctx context.Context, name, folder string) notes.Result
	Update(ctx context.Context, name, folder, body string) notes.Result
	Delete(ctx context.Context, name, folder string) notes.Result
	Move(ctx context.Context, name, targetFolder string) notes.Result
	Search(ctx context.Context, query string) ([]string, notes.Result)
	ListNotes(ctx context.Context, folder string) ([]string, notes.Result)
	ListFolders(ctx context.Context) ([]string, notes.Result)
	ListAccounts(ctx context.Context) ([]string, notes.Result)
}

// allow consults the limiter when one is configured. The check happens
// before any script is generated or executed.
func allow(limiter *ratelimit.Limiter, operation string) error {
	if limiter == nil {
		return nil
	}
	return limiter.Allow(operation)
}

// failure converts a failed result into the tool-boundary error. A result
// built without a reason still surfaces the generic failure text, never an
// empty message.
func failure(result notes.Result) error {
	if result.Reason == "" {
		return errors.New(notes.GenericFailure)
	}
	return errors.New(result.Reason)
}
