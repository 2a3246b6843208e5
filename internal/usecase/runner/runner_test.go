package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/results"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/workflow"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                          {}
func (nopLogger) Info(string, ...any)                           {}
func (nopLogger) Warn(string, ...any)                           {}
func (nopLogger) Error(string, ...any)                          {}
func (l nopLogger) WithField(string, any) output.LoggerPort     { return l }
func (l nopLogger) WithFields(map[string]any) output.LoggerPort { return l }
func (nopLogger) Close() error                                  { return nil }

type fakeEvaluation struct {
	questions    []entity.Question
	questionsErr error
}

func (f *fakeEvaluation) Questions(context.Context) ([]entity.Question, error) {
	return f.questions, f.questionsErr
}

func (f *fakeEvaluation) FetchFile(context.Context, entity.Question) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEvaluation) Submit(context.Context, output.SubmissionRequest) (*output.SubmissionResult, error) {
	return nil, errors.New("not implemented")
}

// answerStage is a one-stage workflow: it answers every question directly,
// failing the task ids it is told to fail. It records which questions it saw.
type answerStage struct {
	failTaskIDs map[string]bool
	seen        []string
}

func (*answerStage) Name() string                 { return "answer" }
func (*answerStage) Consumes() workflow.EventType { return workflow.EventStart }
func (*answerStage) Emits() []workflow.EventType  { return []workflow.EventType{workflow.EventStop} }

func (s *answerStage) Handle(_ context.Context, run *workflow.RunContext, ev workflow.Event) (workflow.Event, error) {
	start := ev.(workflow.StartEvent)
	s.seen = append(s.seen, start.Question.TaskID)
	if s.failTaskIDs[start.Question.TaskID] {
		return nil, errors.New("no answer found")
	}
	return workflow.StopEvent{
		Result: entity.Result{Question: start.Question, Answer: "answer " + start.Question.TaskID},
	}, nil
}

func newTestRunner(t *testing.T, eval *fakeEvaluation, stage *answerStage) (*Runner, *results.Store) {
	t.Helper()

	engine := workflow.NewEngine(workflow.RetryPolicy{Delay: time.Millisecond, MaxAttempts: 1}, nopLogger{})
	require.NoError(t, engine.Register(stage))

	store, err := results.NewStore(t.TempDir())
	require.NoError(t, err)

	return New(eval, engine, store, nopLogger{}, time.Minute), store
}

func TestRunAnswersAndPersistsEveryQuestion(t *testing.T) {
	eval := &fakeEvaluation{questions: []entity.Question{
		{TaskID: "t1", Question: "q1"},
		{TaskID: "t2", Question: "q2"},
	}}
	stage := &answerStage{}
	runner, store := newTestRunner(t, eval, stage)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	result, err := store.Load("t1")
	require.NoError(t, err)
	assert.Equal(t, "answer t1", result.Answer)
	assert.True(t, store.Exists("t2"))
}

func TestRunSkipsAlreadyAnsweredQuestions(t *testing.T) {
	eval := &fakeEvaluation{questions: []entity.Question{
		{TaskID: "t1", Question: "q1"},
		{TaskID: "t2", Question: "q2"},
	}}
	stage := &answerStage{}
	runner, store := newTestRunner(t, eval, stage)

	require.NoError(t, store.Save(entity.Result{
		Question: entity.Question{TaskID: "t1", Question: "q1"},
		Answer:   "previous answer",
	}))

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Answered)
	assert.Equal(t, 1, summary.Skipped)

	// The answered question never entered the workflow again.
	assert.Equal(t, []string{"t2"}, stage.seen)

	// The persisted answer is untouched.
	result, err := store.Load("t1")
	require.NoError(t, err)
	assert.Equal(t, "previous answer", result.Answer)
}

func TestRunContinuesAfterFailedQuestion(t *testing.T) {
	eval := &fakeEvaluation{questions: []entity.Question{
		{TaskID: "t1", Question: "q1"},
		{TaskID: "t2", Question: "q2"},
		{TaskID: "t3", Question: "q3"},
	}}
	stage := &answerStage{failTaskIDs: map[string]bool{"t2": true}}
	runner, store := newTestRunner(t, eval, stage)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 1, summary.Failed)

	assert.True(t, store.Exists("t1"))
	assert.False(t, store.Exists("t2"))
	assert.True(t, store.Exists("t3"))
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	eval := &fakeEvaluation{questions: []entity.Question{
		{TaskID: "t1", Question: "q1"},
		{TaskID: "t2", Question: "q2"},
	}}
	stage := &answerStage{}
	runner, _ := newTestRunner(t, eval, stage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.Answered)
}

func TestRunPropagatesQuestionListingFailure(t *testing.T) {
	eval := &fakeEvaluation{questionsErr: errors.New("service unavailable")}
	runner, _ := newTestRunner(t, eval, &answerStage{})

	_, err := runner.Run(context.Background())
	assert.Error(t, err)
}
