package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/input"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/results"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/workflow"
)

var _ input.QuestionRunner = (*Runner)(nil)

// Runner drives every question through the workflow engine. Questions are
// processed sequentially; each run owns its own RunContext, and a failed run
// never aborts the remaining questions.
type Runner struct {
	evaluation output.EvaluationPort
	engine     *workflow.Engine
	store      *results.Store
	logger     output.LoggerPort
	timeout    time.Duration
}

func New(
	evaluation output.EvaluationPort,
	engine *workflow.Engine,
	store *results.Store,
	logger output.LoggerPort,
	timeout time.Duration,
) *Runner {
	return &Runner{
		evaluation: evaluation,
		engine:     engine,
		store:      store,
		logger:     logger,
		timeout:    timeout,
	}
}

func (r *Runner) Run(ctx context.Context) (*input.RunSummary, error) {
	questions, err := r.evaluation.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	summary := &input.RunSummary{Total: len(questions)}
	for _, question := range questions {
		log := r.logger.WithField("taskID", question.TaskID)

		if r.store.Exists(question.TaskID) {
			log.Info("Result exists, skipping")
			summary.Skipped++
			continue
		}

		result, err := r.runOne(ctx, question)
		if err != nil {
			log.Error("Question failed", "error", err)
			summary.Failed++
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			continue
		}

		if err := r.store.Save(*result); err != nil {
			log.Error("Failed to persist result", "error", err)
			summary.Failed++
			continue
		}

		log.Info("Question answered", "answer", result.Answer)
		summary.Answered++
	}
	return summary, nil
}

func (r *Runner) runOne(ctx context.Context, question entity.Question) (*entity.Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.engine.Run(runCtx, workflow.NewRunContext(), workflow.StartEvent{Question: question})
}
