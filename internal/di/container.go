package di

import (
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/adapter/tool"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/input"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/service"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/env"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/evaluation"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/llm/gemini"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/logger"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/prompts"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/spreadsheet"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/results"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/usecase/runner"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/workflow"
)

type Container struct {
	Settings   *env.Settings
	Logger     output.LoggerPort
	LLM        output.LLMPort
	Evaluation output.EvaluationPort
	Tools      output.ToolRegistry
	Store      *results.Store
	Engine     *workflow.Engine
	Runner     input.QuestionRunner
}

func NewContainer(settings *env.Settings) (*Container, error) {
	log, err := logger.NewZapAdapter(settings.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llm := gemini.NewGeminiAdapter(gemini.DefaultConfig(settings.GeminiAPIKey, settings.GeminiModel), log)
	eval := evaluation.NewClient(settings.EvaluationBaseURL, log)

	tools := service.NewToolRegistry()
	if err := registerTools(tools, llm, log); err != nil {
		log.Close()
		return nil, err
	}

	store, err := results.NewStore(settings.ResultPath())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create result store: %w", err)
	}

	engine, err := workflow.NewQuestionEngine(workflow.Deps{
		LLM:            llm,
		Tools:          tools,
		Evaluation:     eval,
		Converter:      spreadsheet.NewConverter(),
		Logger:         log,
		DataDir:        settings.DataDir,
		SystemPrompt:   prompts.SystemPrompt,
		ExtractionTmpl: prompts.ExtractionTemplate,
		Retry: workflow.RetryPolicy{
			Delay:       settings.RetryDelay,
			MaxAttempts: settings.RetryAttempts,
		},
	})
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to assemble engine: %w", err)
	}

	return &Container{
		Settings:   settings,
		Logger:     log,
		LLM:        llm,
		Evaluation: eval,
		Tools:      tools,
		Store:      store,
		Engine:     engine,
		Runner:     runner.New(eval, engine, store, log, settings.RunTimeout),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerTools(registry *service.ToolRegistryImpl, llm output.LLMPort, log output.LoggerPort) error {
	search, err := tool.NewSearchTool(log)
	if err != nil {
		return fmt.Errorf("failed to create search tool: %w", err)
	}
	registry.Register(search)
	registry.Register(tool.NewWikipediaTool(log))
	registry.Register(tool.NewYoutubeTool(llm, log))
	registry.Register(tool.NewDecodeTool(llm, log))
	return nil
}
