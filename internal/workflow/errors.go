package workflow

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by stages and collaborators. Collaborator adapters
// wrap their failures with one of these so the engine can decide whether the
// retry policy applies.
var (
	// ErrTransport marks network/HTTP failures from any collaborator.
	ErrTransport = errors.New("transport error")

	// ErrPrecondition marks an operation whose preconditions do not hold,
	// e.g. a file fetch for a question without an attachment.
	ErrPrecondition = errors.New("precondition violated")

	// ErrMalformedResponse marks a model response with neither text nor tool
	// calls, or empty text where text is required.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrUnknownTool marks a requested tool name absent from the catalog. It
	// indicates a static mismatch between the advertised catalog and the
	// registered tools, never a transient condition.
	ErrUnknownTool = errors.New("unknown tool")
)

// Retryable reports whether the retry policy applies to err. Unknown-tool
// and precondition failures fail the run immediately.
func Retryable(err error) bool {
	return !errors.Is(err, ErrUnknownTool) && !errors.Is(err, ErrPrecondition)
}

// StageError is the terminal failure of one stage: its retry budget is spent,
// or a non-retryable error occurred. It carries the stage name, the number of
// attempts made and the last underlying error.
type StageError struct {
	Stage    string
	Attempts int
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed after %d attempt(s): %v", e.Stage, e.Attempts, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
