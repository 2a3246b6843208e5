package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

const maxObservationLen = 20000

// SpreadsheetConverter turns a local spreadsheet file into a markdown table.
type SpreadsheetConverter interface {
	Convertible(path string) bool
	ToMarkdown(path string) (string, error)
}

// StartStage seeds the run context with the question and the initial user
// turn, then routes on the presence of an attachment.
type StartStage struct{}

func (StartStage) Name() string        { return "start" }
func (StartStage) Consumes() EventType { return EventStart }
func (StartStage) Emits() []EventType  { return []EventType{EventDownloadFile, EventCallModel} }

func (StartStage) Handle(_ context.Context, run *RunContext, ev Event) (Event, error) {
	start, ok := ev.(StartEvent)
	if !ok {
		return nil, fmt.Errorf("start: unexpected event %T", ev)
	}

	run.Question = start.Question
	run.Append(entity.Message{Role: entity.RoleUser, Content: start.Question.Question})

	if start.Question.HasFile() {
		return DownloadFileEvent{}, nil
	}
	return CallModelEvent{}, nil
}

// DownloadFileStage fetches the question attachment from the evaluation
// collaborator and writes it under a per-question scratch directory.
type DownloadFileStage struct {
	Evaluation output.EvaluationPort
	DataDir    string
}

func (DownloadFileStage) Name() string        { return "download_file" }
func (DownloadFileStage) Consumes() EventType { return EventDownloadFile }
func (DownloadFileStage) Emits() []EventType  { return []EventType{EventUploadFile} }

func (s DownloadFileStage) Handle(ctx context.Context, run *RunContext, ev Event) (Event, error) {
	if _, ok := ev.(DownloadFileEvent); !ok {
		return nil, fmt.Errorf("download_file: unexpected event %T", ev)
	}

	question := run.Question
	data, err := s.Evaluation.FetchFile(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", question.FileName, err)
	}

	dir := filepath.Join(s.DataDir, question.TaskID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	path := filepath.Join(dir, question.FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	run.FilePath = path
	return UploadFileEvent{FilePath: path}, nil
}

// UploadFileStage ingests the downloaded attachment: spreadsheets become a
// markdown-table user turn, everything else goes through the model
// collaborator's file-ingestion primitive.
type UploadFileStage struct {
	LLM       output.LLMPort
	Converter SpreadsheetConverter
}

func (UploadFileStage) Name() string        { return "upload_file" }
func (UploadFileStage) Consumes() EventType { return EventUploadFile }
func (UploadFileStage) Emits() []EventType  { return []EventType{EventCallModel} }

func (s UploadFileStage) Handle(ctx context.Context, run *RunContext, ev Event) (Event, error) {
	upload, ok := ev.(UploadFileEvent)
	if !ok {
		return nil, fmt.Errorf("upload_file: unexpected event %T", ev)
	}

	if s.Converter.Convertible(upload.FilePath) {
		table, err := s.Converter.ToMarkdown(upload.FilePath)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", upload.FilePath, err)
		}
		run.Append(entity.Message{
			Role:    entity.RoleUser,
			Content: fmt.Sprintf("The attached file %s contains the following table(s):\n\n%s", run.Question.FileName, table),
		})
		return CallModelEvent{}, nil
	}

	uri, err := s.LLM.Upload(ctx, upload.FilePath)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", upload.FilePath, err)
	}
	run.Append(entity.Message{Role: entity.RoleUser, FileURI: uri})
	return CallModelEvent{}, nil
}

// CallModelStage invokes the model collaborator with the full turn history
// and the tool catalog. A response naming tools routes to tool execution, a
// plain-text response is appended as a model turn and routed to extraction.
type CallModelStage struct {
	LLM          output.LLMPort
	Tools        output.ToolRegistry
	SystemPrompt string
}

func (CallModelStage) Name() string        { return "call_model" }
func (CallModelStage) Consumes() EventType { return EventCallModel }
func (CallModelStage) Emits() []EventType {
	return []EventType{EventCallTools, EventExtractAnswer}
}

func (s CallModelStage) Handle(ctx context.Context, run *RunContext, ev Event) (Event, error) {
	if _, ok := ev.(CallModelEvent); !ok {
		return nil, fmt.Errorf("call_model: unexpected event %T", ev)
	}

	messages := make([]entity.Message, 0, len(run.Turns)+1)
	messages = append(messages, entity.Message{Role: entity.RoleSystem, Content: s.SystemPrompt})
	messages = append(messages, run.Turns...)

	resp, err := s.LLM.Chat(ctx, output.ChatRequest{
		Messages:    messages,
		Tools:       s.Tools.Definitions(),
		Temperature: 0.0,
	})
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	if len(resp.Message.ToolCalls) > 0 {
		return CallToolsEvent{Calls: resp.Message.ToolCalls}, nil
	}

	text := strings.TrimSpace(resp.Message.Content)
	if text == "" {
		return nil, fmt.Errorf("model returned neither text nor tool calls: %w", ErrMalformedResponse)
	}

	run.Append(entity.Message{Role: entity.RoleAssistant, Content: resp.Message.Content})
	return ExtractAnswerEvent{Text: resp.Message.Content}, nil
}

// CallToolsStage executes the requested function calls sequentially, in the
// order received. Turns are buffered and committed only when the whole batch
// succeeds, so a retried stage starts from a clean context.
type CallToolsStage struct {
	Tools  output.ToolRegistry
	Logger output.LoggerPort
}

func (CallToolsStage) Name() string        { return "call_tools" }
func (CallToolsStage) Consumes() EventType { return EventCallTools }
func (CallToolsStage) Emits() []EventType  { return []EventType{EventCallModel} }

func (s CallToolsStage) Handle(ctx context.Context, run *RunContext, ev Event) (Event, error) {
	callsEvent, ok := ev.(CallToolsEvent)
	if !ok {
		return nil, fmt.Errorf("call_tools: unexpected event %T", ev)
	}

	batch := make([]entity.Message, 0, len(callsEvent.Calls)*2)
	for _, call := range callsEvent.Calls {
		batch = append(batch, entity.Message{
			Role:      entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{call},
		})

		tool, found := s.Tools.Get(entity.ToolName(call.Name))
		if !found {
			return nil, fmt.Errorf("tool %q not in catalog: %w", call.Name, ErrUnknownTool)
		}

		s.Logger.Info("Executing tool", "name", call.Name, "args", call.Arguments)
		result, err := tool.Execute(ctx, call.Arguments)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", call.Name, err)
		}
		if len(result) > maxObservationLen {
			result = result[:maxObservationLen] + "\n... (truncated)"
		}

		batch = append(batch, entity.Message{
			Role:       entity.RoleTool,
			ToolCallID: call.ID,
			Name:       call.Name,
			Content:    result,
		})
	}

	run.Append(batch...)
	return CallModelEvent{}, nil
}

// ExtractAnswerStage issues a second, narrowly-scoped model call that strips
// the model's explanatory prose down to the literal answer. No system
// persona, deterministic sampling.
type ExtractAnswerStage struct {
	LLM output.LLMPort

	// PromptTemplate receives the question text and the model's free-text
	// answer, in that order.
	PromptTemplate string
}

func (ExtractAnswerStage) Name() string        { return "extract_answer" }
func (ExtractAnswerStage) Consumes() EventType { return EventExtractAnswer }
func (ExtractAnswerStage) Emits() []EventType  { return []EventType{EventStop} }

func (s ExtractAnswerStage) Handle(ctx context.Context, run *RunContext, ev Event) (Event, error) {
	extract, ok := ev.(ExtractAnswerEvent)
	if !ok {
		return nil, fmt.Errorf("extract_answer: unexpected event %T", ev)
	}

	resp, err := s.LLM.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{{
			Role:    entity.RoleUser,
			Content: fmt.Sprintf(s.PromptTemplate, run.Question.Question, extract.Text),
		}},
		Temperature: 0.0,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction call: %w", err)
	}

	answer := strings.TrimSpace(resp.Message.Content)
	if answer == "" {
		return nil, fmt.Errorf("empty extraction response: %w", ErrMalformedResponse)
	}

	run.Answer = answer
	return StopEvent{Result: entity.Result{Question: run.Question, Answer: answer}}, nil
}
