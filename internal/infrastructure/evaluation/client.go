package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/workflow"
)

// DefaultBaseURL is the agents-course scoring space.
const DefaultBaseURL = "https://agents-course-unit4-scoring.hf.space"

var _ output.EvaluationPort = (*Client)(nil)

// Client talks to the evaluation service: question listing, attachment
// download and answer submission.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     output.LoggerPort
}

func NewClient(baseURL string, logger output.LoggerPort) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

func (c *Client) Questions(ctx context.Context) ([]entity.Question, error) {
	body, err := c.get(ctx, c.baseURL+"/questions")
	if err != nil {
		return nil, err
	}

	var questions []entity.Question
	if err := json.Unmarshal(body, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	c.logger.Info("Fetched questions", "count", len(questions))
	return questions, nil
}

func (c *Client) FetchFile(ctx context.Context, question entity.Question) ([]byte, error) {
	if !question.HasFile() {
		return nil, fmt.Errorf("question %s has no file attached: %w", question.TaskID, workflow.ErrPrecondition)
	}

	body, err := c.get(ctx, c.baseURL+"/files/"+question.TaskID)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Fetched file", "taskID", question.TaskID, "file", question.FileName, "bytes", len(body))
	return body, nil
}

func (c *Client) Submit(ctx context.Context, req output.SubmissionRequest) (*output.SubmissionResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/submit", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit: %w: %w", workflow.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read submit response: %w: %w", workflow.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("submit returned %s: %w", resp.Status, workflow.ErrTransport)
	}

	var result output.SubmissionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode submit response: %w", err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", url, workflow.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s returned %s: %w", url, resp.Status, workflow.ErrTransport)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", url, workflow.ErrTransport, err)
	}
	return body, nil
}
