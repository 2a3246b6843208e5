package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

// DecodeTool asks the model collaborator to decode obfuscated text.
type DecodeTool struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func NewDecodeTool(llm output.LLMPort, logger output.LoggerPort) *DecodeTool {
	return &DecodeTool{llm: llm, logger: logger}
}

func (t *DecodeTool) Name() entity.ToolName { return entity.ToolDecodeText }

func (t *DecodeTool) Description() string {
	return "Decode the given text and return the decoded text. Use this tool whenever you " +
		"encounter a text that is not in a standard readable format, such as reversed text " +
		"or text encoded in another way."
}

func (t *DecodeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "The text to decode",
			},
		},
		"required": []string{"text"},
	}
}

func (t *DecodeTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("parse arguments: %w", err)
	}

	t.logger.Info("Decoding text", "length", len(input.Text))
	resp, err := t.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{{
			Role:    entity.RoleUser,
			Content: "Decode the following text, ONLY respond with the decoded text:\n\n" + input.Text,
		}},
		Temperature: 0.0,
	})
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	if resp.Message.Content == "" {
		return "", fmt.Errorf("no text returned from decoding")
	}
	return resp.Message.Content, nil
}
