package workflow

import (
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

// RunContext is the shared mutable state of one workflow run. It is owned by
// exactly one run and mutated only by the currently executing stage, so no
// locking is needed. Turns are append-only; the full interaction history is
// always reconstructable.
type RunContext struct {
	Question entity.Question
	Turns    []entity.Message
	FilePath string
	Answer   string
}

func NewRunContext() *RunContext {
	return &RunContext{}
}

// Append adds turns to the conversation log. Existing turns are never
// reordered or deleted.
func (c *RunContext) Append(turns ...entity.Message) {
	c.Turns = append(c.Turns, turns...)
}
