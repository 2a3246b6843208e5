package workflow

import (
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
)

// Deps collects the collaborators of the question workflow.
type Deps struct {
	LLM        output.LLMPort
	Tools      output.ToolRegistry
	Evaluation output.EvaluationPort
	Converter  SpreadsheetConverter
	Logger     output.LoggerPort

	DataDir        string
	SystemPrompt   string
	ExtractionTmpl string
	Retry          RetryPolicy
}

// NewQuestionEngine assembles the engine with the six question stages and
// validates the routing graph.
func NewQuestionEngine(deps Deps) (*Engine, error) {
	engine := NewEngine(deps.Retry, deps.Logger)

	stages := []Stage{
		StartStage{},
		DownloadFileStage{Evaluation: deps.Evaluation, DataDir: deps.DataDir},
		UploadFileStage{LLM: deps.LLM, Converter: deps.Converter},
		CallModelStage{LLM: deps.LLM, Tools: deps.Tools, SystemPrompt: deps.SystemPrompt},
		CallToolsStage{Tools: deps.Tools, Logger: deps.Logger},
		ExtractAnswerStage{LLM: deps.LLM, PromptTemplate: deps.ExtractionTmpl},
	}
	for _, stage := range stages {
		if err := engine.Register(stage); err != nil {
			return nil, fmt.Errorf("register %s: %w", stage.Name(), err)
		}
	}

	if err := engine.Validate(); err != nil {
		return nil, err
	}
	return engine, nil
}
