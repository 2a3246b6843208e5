package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"

	"github.com/tmc/langchaingo/tools/wikipedia"
)

// WikipediaTool returns the content of the top Wikipedia result for a title.
type WikipediaTool struct {
	wiki   wikipedia.Tool
	logger output.LoggerPort
}

func NewWikipediaTool(logger output.LoggerPort) *WikipediaTool {
	return &WikipediaTool{
		wiki:   wikipedia.New(searchUserAgent),
		logger: logger,
	}
}

func (t *WikipediaTool) Name() entity.ToolName { return entity.ToolWikipediaSearch }

func (t *WikipediaTool) Description() string {
	return "Search Wikipedia for a given title and return the content of the top result. " +
		"Use this tool whenever you need information from Wikipedia."
}

func (t *WikipediaTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"wikipedia_title": map[string]interface{}{
				"type":        "string",
				"description": "The title to search for on Wikipedia",
			},
		},
		"required": []string{"wikipedia_title"},
	}
}

func (t *WikipediaTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Title string `json:"wikipedia_title"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("parse arguments: %w", err)
	}

	t.logger.Info("Searching Wikipedia", "title", input.Title)
	result, err := t.wiki.Call(ctx, input.Title)
	if err != nil {
		return "", fmt.Errorf("wikipedia search: %w", err)
	}
	if result == "" {
		return "No results found.", nil
	}
	return result, nil
}
