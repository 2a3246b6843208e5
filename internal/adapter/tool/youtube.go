package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

const youtubeURLPrefix = "https://www.youtube.com/watch?v="

// YoutubeTool answers a question about the content of a YouTube video by
// passing the video URI to the model collaborator.
type YoutubeTool struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func NewYoutubeTool(llm output.LLMPort, logger output.LoggerPort) *YoutubeTool {
	return &YoutubeTool{llm: llm, logger: logger}
}

func (t *YoutubeTool) Name() entity.ToolName { return entity.ToolYoutubeSearch }

func (t *YoutubeTool) Description() string {
	return "Answer a question based on the content of a YouTube video. The video URL must be " +
		"in the format https://www.youtube.com/watch?v=VIDEO_ID."
}

func (t *YoutubeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"question": map[string]interface{}{
				"type":        "string",
				"description": "The question to answer",
			},
			"video_url": map[string]interface{}{
				"type":        "string",
				"description": "The URL of the YouTube video",
			},
		},
		"required": []string{"question", "video_url"},
	}
}

func (t *YoutubeTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Question string `json:"question"`
		VideoURL string `json:"video_url"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("parse arguments: %w", err)
	}
	if !strings.HasPrefix(input.VideoURL, youtubeURLPrefix) {
		return "", fmt.Errorf("invalid YouTube URL: %s", input.VideoURL)
	}

	t.logger.Info("Answering video question", "url", input.VideoURL, "question", input.Question)
	resp, err := t.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{{
			Role:    entity.RoleUser,
			FileURI: input.VideoURL,
			Content: "Based on the content of this YouTube video, answer the following question:\n\n" + input.Question,
		}},
		Temperature: 0.0,
	})
	if err != nil {
		return "", fmt.Errorf("video question: %w", err)
	}
	return resp.Message.Content, nil
}
