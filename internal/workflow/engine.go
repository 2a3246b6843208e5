package workflow

import (
	"context"
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

// Stage is one handler in the workflow. It consumes exactly one event type
// and produces one of its declared successor event types.
type Stage interface {
	Name() string
	Consumes() EventType
	Emits() []EventType
	Handle(ctx context.Context, run *RunContext, ev Event) (Event, error)
}

// Engine owns the registered stages and drives one run from a start event to
// the stop event, applying the retry policy around each stage invocation.
// Exactly one stage executes at a time for a given run; the run context is
// consistent whenever a stage is invoked.
//
// The engine itself is stateless across runs and safe to share between
// concurrent runs as long as each run has its own RunContext.
type Engine struct {
	stages map[EventType]Stage
	retry  RetryPolicy
	logger output.LoggerPort
}

func NewEngine(retry RetryPolicy, logger output.LoggerPort) *Engine {
	return &Engine{
		stages: make(map[EventType]Stage),
		retry:  retry,
		logger: logger,
	}
}

// Register adds a stage as the sole consumer of its event type. Two stages
// consuming the same event type is a configuration error.
func (e *Engine) Register(stage Stage) error {
	if existing, ok := e.stages[stage.Consumes()]; ok {
		return fmt.Errorf("event %q already consumed by stage %s", stage.Consumes(), existing.Name())
	}
	e.stages[stage.Consumes()] = stage
	return nil
}

// Validate checks the routing graph: a start consumer exists, exactly one
// stage produces the stop event, every emitted event type has a registered
// consumer, and no registered stage is unreachable from the start event.
func (e *Engine) Validate() error {
	if _, ok := e.stages[EventStart]; !ok {
		return fmt.Errorf("no stage consumes the start event")
	}

	stopProducers := 0
	for _, stage := range e.stages {
		for _, emitted := range stage.Emits() {
			if emitted == EventStop {
				stopProducers++
				continue
			}
			if _, ok := e.stages[emitted]; !ok {
				return fmt.Errorf("stage %s emits %q which has no registered consumer", stage.Name(), emitted)
			}
		}
	}
	if stopProducers != 1 {
		return fmt.Errorf("expected exactly one stop-producing stage, found %d", stopProducers)
	}

	reachable := map[EventType]bool{EventStart: true}
	queue := []EventType{EventStart}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		stage, ok := e.stages[current]
		if !ok {
			continue
		}
		for _, emitted := range stage.Emits() {
			if !reachable[emitted] {
				reachable[emitted] = true
				queue = append(queue, emitted)
			}
		}
	}
	for consumed, stage := range e.stages {
		if !reachable[consumed] {
			return fmt.Errorf("stage %s (event %q) is unreachable from the start event", stage.Name(), consumed)
		}
	}
	return nil
}

// Run executes one workflow run to completion. The returned result is
// produced by the stop-producing stage; on stage failure the run terminates
// without a result and the error identifies the failed stage.
func (e *Engine) Run(ctx context.Context, run *RunContext, start StartEvent) (*entity.Result, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid routing graph: %w", err)
	}

	var ev Event = start
	for {
		if stop, ok := ev.(StopEvent); ok {
			return &stop.Result, nil
		}

		// Cancellation is run-scoped and checked between stages only;
		// in-flight collaborator calls are bounded by the same ctx.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		stage, ok := e.stages[ev.Type()]
		if !ok {
			return nil, fmt.Errorf("no stage registered for event %q", ev.Type())
		}

		next, err := e.invoke(ctx, stage, run, ev)
		if err != nil {
			return nil, err
		}
		ev = next
	}
}

// invoke wraps a single stage execution with the retry policy. Non-retryable
// errors fail immediately; exhausted retries surface as a StageError carrying
// the last underlying error.
func (e *Engine) invoke(ctx context.Context, stage Stage, run *RunContext, ev Event) (Event, error) {
	var lastErr error
	for attempt := 1; attempt <= e.retry.MaxAttempts; attempt++ {
		next, err := stage.Handle(ctx, run, ev)
		if err == nil {
			e.logger.Debug("Stage completed", "stage", stage.Name(), "attempt", attempt, "next", string(next.Type()))
			return next, nil
		}
		lastErr = err
		e.logger.Warn("Stage failed", "stage", stage.Name(), "attempt", attempt, "error", err)

		if !Retryable(err) {
			return nil, &StageError{Stage: stage.Name(), Attempts: attempt, Err: err}
		}
		if attempt == e.retry.MaxAttempts {
			break
		}
		if waitErr := e.retry.wait(ctx); waitErr != nil {
			return nil, &StageError{Stage: stage.Name(), Attempts: attempt, Err: waitErr}
		}
	}
	return nil, &StageError{Stage: stage.Name(), Attempts: e.retry.MaxAttempts, Err: lastErr}
}
