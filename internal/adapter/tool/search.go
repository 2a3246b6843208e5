package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"

	"github.com/tmc/langchaingo/tools/duckduckgo"
)

const searchUserAgent = "gaia-agent/1.0 (github.com/maltehedderich/agents-course-gaia-challenge)"

// SearchTool answers a question from web search results.
type SearchTool struct {
	search *duckduckgo.Tool
	logger output.LoggerPort
}

func NewSearchTool(logger output.LoggerPort) (*SearchTool, error) {
	search, err := duckduckgo.New(5, searchUserAgent)
	if err != nil {
		return nil, fmt.Errorf("create search client: %w", err)
	}
	return &SearchTool{search: search, logger: logger}, nil
}

func (t *SearchTool) Name() entity.ToolName { return entity.ToolGoogleSearch }

func (t *SearchTool) Description() string {
	return "Search the web for a given question and return a concise answer based on the top " +
		"search results. Use this tool when you need up-to-date or general information from " +
		"the web, such as news, facts, or broad topics."
}

func (t *SearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question": map[string]interface{}{
				"type":        "string",
				"description": "The question you want answered",
			},
		},
		"required": []string{"question"},
	}
}

func (t *SearchTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("parse arguments: %w", err)
	}

	t.logger.Info("Searching the web", "question", input.Question)
	result, err := t.search.Call(ctx, input.Question)
	if err != nil {
		return "", fmt.Errorf("web search: %w", err)
	}
	return result, nil
}
