package output

import (
	"context"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

// EvaluationPort is the scoring API collaborator: question listing,
// attachment download and answer submission.
type EvaluationPort interface {
	Questions(ctx context.Context) ([]entity.Question, error)

	// FetchFile downloads the attachment of a question. The question must
	// have a non-empty file name.
	FetchFile(ctx context.Context, question entity.Question) ([]byte, error)

	Submit(ctx context.Context, req SubmissionRequest) (*SubmissionResult, error)
}

type SubmissionRequest struct {
	Username  string            `json:"username"`
	AgentCode string            `json:"agent_code"`
	Answers   []SubmittedAnswer `json:"answers"`
}

type SubmittedAnswer struct {
	TaskID          string `json:"task_id"`
	SubmittedAnswer string `json:"submitted_answer"`
}

type SubmissionResult struct {
	Username       string  `json:"username"`
	Score          float64 `json:"score"`
	CorrectCount   int     `json:"correct_count"`
	TotalAttempted int     `json:"total_attempted"`
	Message        string  `json:"message"`
	Timestamp      string  `json:"timestamp"`
}
