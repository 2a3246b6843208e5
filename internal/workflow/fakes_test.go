package workflow

import (
	"context"
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                          {}
func (nopLogger) Info(string, ...any)                           {}
func (nopLogger) Warn(string, ...any)                           {}
func (nopLogger) Error(string, ...any)                          {}
func (l nopLogger) WithField(string, any) output.LoggerPort     { return l }
func (l nopLogger) WithFields(map[string]any) output.LoggerPort { return l }
func (nopLogger) Close() error                                  { return nil }

// scriptedLLM replays a fixed sequence of responses and records every
// request it receives.
type scriptedLLM struct {
	script   []func(req output.ChatRequest) (*output.ChatResponse, error)
	requests []output.ChatRequest
	uploads  []string
}

func (l *scriptedLLM) Chat(_ context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	l.requests = append(l.requests, req)
	if len(l.script) == 0 {
		return nil, fmt.Errorf("scriptedLLM: unexpected call %d", len(l.requests))
	}
	next := l.script[0]
	l.script = l.script[1:]
	return next(req)
}

func (l *scriptedLLM) Upload(_ context.Context, path string) (string, error) {
	l.uploads = append(l.uploads, path)
	return "data:application/octet-stream;base64,AAAA", nil
}

func textResponse(text string) func(output.ChatRequest) (*output.ChatResponse, error) {
	return func(output.ChatRequest) (*output.ChatResponse, error) {
		return &output.ChatResponse{
			Message: entity.Message{Role: entity.RoleAssistant, Content: text},
		}, nil
	}
}

func toolCallResponse(calls ...entity.ToolCall) func(output.ChatRequest) (*output.ChatResponse, error) {
	return func(output.ChatRequest) (*output.ChatResponse, error) {
		return &output.ChatResponse{
			Message: entity.Message{Role: entity.RoleAssistant, ToolCalls: calls},
		}, nil
	}
}

func errorResponse(err error) func(output.ChatRequest) (*output.ChatResponse, error) {
	return func(output.ChatRequest) (*output.ChatResponse, error) {
		return nil, err
	}
}

// fakeEvaluation serves a canned file, optionally failing a configured
// number of times first.
type fakeEvaluation struct {
	file       []byte
	fetchErr   error
	failFirst  int
	fetchCalls int
}

func (f *fakeEvaluation) Questions(context.Context) ([]entity.Question, error) {
	return nil, nil
}

func (f *fakeEvaluation) FetchFile(_ context.Context, question entity.Question) ([]byte, error) {
	f.fetchCalls++
	if !question.HasFile() {
		return nil, fmt.Errorf("no file attached: %w", ErrPrecondition)
	}
	if f.fetchErr != nil && (f.failFirst == 0 || f.fetchCalls <= f.failFirst) {
		return nil, f.fetchErr
	}
	return f.file, nil
}

func (f *fakeEvaluation) Submit(context.Context, output.SubmissionRequest) (*output.SubmissionResult, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeTool struct {
	name   entity.ToolName
	result string
	err    error
	calls  []string
}

func (t *fakeTool) Name() entity.ToolName { return t.name }
func (t *fakeTool) Description() string   { return "fake tool" }

func (t *fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}

func (t *fakeTool) Execute(_ context.Context, args string) (string, error) {
	t.calls = append(t.calls, args)
	if t.err != nil {
		return "", t.err
	}
	return t.result, nil
}

type fakeConverter struct {
	convertible bool
	table       string
	err         error
}

func (c fakeConverter) Convertible(string) bool { return c.convertible }

func (c fakeConverter) ToMarkdown(string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.table, nil
}
