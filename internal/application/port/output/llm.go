package output

import (
	"context"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

// LLMPort is the model collaborator: one call with the accumulated turn
// history and the advertised tool catalog. On success exactly one of
// Message.Content / Message.ToolCalls is populated.
type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Upload ingests a local file and returns an opaque handle usable as a
	// conversation turn (entity.Message.FileURI).
	Upload(ctx context.Context, path string) (string, error)
}

type ChatRequest struct {
	Messages    []entity.Message
	Tools       []entity.ToolDefinition
	Temperature float32
}

type ChatResponse struct {
	Message entity.Message
}
