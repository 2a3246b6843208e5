package workflow

import (
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

// EventType identifies which stage consumes an event.
type EventType string

const (
	EventStart         EventType = "start"
	EventDownloadFile  EventType = "download_file"
	EventUploadFile    EventType = "upload_file"
	EventCallModel     EventType = "call_model"
	EventCallTools     EventType = "call_tools"
	EventExtractAnswer EventType = "extract_answer"
	EventStop          EventType = "stop"
)

// Event is a typed message routed between stages. The set of event types is
// closed; each event is produced by one stage and consumed by exactly one
// registered successor. Ownership transfers at the moment of routing.
type Event interface {
	Type() EventType
}

// StartEvent begins a run with one question.
type StartEvent struct {
	Question entity.Question
}

func (StartEvent) Type() EventType { return EventStart }

// DownloadFileEvent requests the question attachment from the evaluation
// collaborator. The question is read from the run context.
type DownloadFileEvent struct{}

func (DownloadFileEvent) Type() EventType { return EventDownloadFile }

// UploadFileEvent carries the local path of a downloaded attachment to be
// ingested into the conversation.
type UploadFileEvent struct {
	FilePath string
}

func (UploadFileEvent) Type() EventType { return EventUploadFile }

// CallModelEvent triggers one model invocation over the accumulated turns.
type CallModelEvent struct{}

func (CallModelEvent) Type() EventType { return EventCallModel }

// CallToolsEvent carries the ordered batch of function calls requested by
// the model.
type CallToolsEvent struct {
	Calls []entity.ToolCall
}

func (CallToolsEvent) Type() EventType { return EventCallTools }

// ExtractAnswerEvent carries the model's final free-text answer.
type ExtractAnswerEvent struct {
	Text string
}

func (ExtractAnswerEvent) Type() EventType { return EventExtractAnswer }

// StopEvent terminates the run, carrying the result.
type StopEvent struct {
	Result entity.Result
}

func (StopEvent) Type() EventType { return EventStop }
