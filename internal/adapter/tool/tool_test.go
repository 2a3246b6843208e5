package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// stubLLM answers every chat with a fixed message and records the requests.
type stubLLM struct {
	content  string
	err      error
	requests []output.ChatRequest
}

func (l *stubLLM) Chat(_ context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	l.requests = append(l.requests, req)
	if l.err != nil {
		return nil, l.err
	}
	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: l.content},
	}, nil
}

func (l *stubLLM) Upload(context.Context, string) (string, error) {
	return "", errors.New("not implemented")
}

func TestDecodeToolPassesTextToModel(t *testing.T) {
	llm := &stubLLM{content: "hello world"}
	tool := NewDecodeTool(llm, nopLogger{})

	assert.Equal(t, entity.ToolDecodeText, tool.Name())

	result, err := tool.Execute(context.Background(), `{"text":"dlrow olleh"}`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", result)

	require.Len(t, llm.requests, 1)
	require.Len(t, llm.requests[0].Messages, 1)
	assert.Contains(t, llm.requests[0].Messages[0].Content, "dlrow olleh")
	assert.Zero(t, llm.requests[0].Temperature)
	assert.Empty(t, llm.requests[0].Tools)
}

func TestDecodeToolRejectsMalformedArguments(t *testing.T) {
	tool := NewDecodeTool(&stubLLM{content: "x"}, nopLogger{})

	_, err := tool.Execute(context.Background(), `{"text":`)
	assert.Error(t, err)
}

func TestDecodeToolEmptyModelResponseFails(t *testing.T) {
	tool := NewDecodeTool(&stubLLM{content: ""}, nopLogger{})

	_, err := tool.Execute(context.Background(), `{"text":"abc"}`)
	assert.Error(t, err)
}

func TestYoutubeToolSendsVideoURIAsFileTurn(t *testing.T) {
	llm := &stubLLM{content: "The video shows a cat."}
	tool := NewYoutubeTool(llm, nopLogger{})

	assert.Equal(t, entity.ToolYoutubeSearch, tool.Name())

	result, err := tool.Execute(context.Background(),
		`{"question":"What animal appears?","video_url":"https://www.youtube.com/watch?v=abc123"}`)
	require.NoError(t, err)
	assert.Equal(t, "The video shows a cat.", result)

	require.Len(t, llm.requests, 1)
	require.Len(t, llm.requests[0].Messages, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", llm.requests[0].Messages[0].FileURI)
	assert.Contains(t, llm.requests[0].Messages[0].Content, "What animal appears?")
}

func TestYoutubeToolRejectsNonVideoURL(t *testing.T) {
	llm := &stubLLM{content: "x"}
	tool := NewYoutubeTool(llm, nopLogger{})

	_, err := tool.Execute(context.Background(),
		`{"question":"q","video_url":"https://example.com/watch?v=abc123"}`)
	require.Error(t, err)
	assert.Empty(t, llm.requests)
}

func TestYoutubeToolPropagatesModelFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("model unavailable")}
	tool := NewYoutubeTool(llm, nopLogger{})

	_, err := tool.Execute(context.Background(),
		`{"question":"q","video_url":"https://www.youtube.com/watch?v=abc123"}`)
	assert.Error(t, err)
}

func TestSearchToolRejectsMalformedArguments(t *testing.T) {
	tool, err := NewSearchTool(nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, entity.ToolGoogleSearch, tool.Name())

	_, err = tool.Execute(context.Background(), `not json`)
	assert.Error(t, err)
}

func TestWikipediaToolRejectsMalformedArguments(t *testing.T) {
	tool := NewWikipediaTool(nopLogger{})

	assert.Equal(t, entity.ToolWikipediaSearch, tool.Name())

	_, err := tool.Execute(context.Background(), `not json`)
	assert.Error(t, err)
}

func TestToolParameterSchemasDeclareRequiredFields(t *testing.T) {
	search, err := NewSearchTool(nopLogger{})
	require.NoError(t, err)

	tools := []interface {
		Name() entity.ToolName
		Parameters() map[string]interface{}
	}{
		search,
		NewWikipediaTool(nopLogger{}),
		NewYoutubeTool(&stubLLM{}, nopLogger{}),
		NewDecodeTool(&stubLLM{}, nopLogger{}),
	}

	for _, tool := range tools {
		params := tool.Parameters()
		assert.Equal(t, "object", params["type"], tool.Name())
		assert.NotEmpty(t, params["properties"], tool.Name())
		assert.NotEmpty(t, params["required"], tool.Name())
	}
}
