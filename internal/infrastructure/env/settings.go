package env

import (
	"fmt"
	"path/filepath"
	"time"
)

// Settings holds the full runtime configuration, loaded from the process
// environment (optionally seeded from a .env file).
type Settings struct {
	EvaluationBaseURL string
	GeminiAPIKey      string
	GeminiModel       string

	HuggingFaceUsername string
	AgentCodeURL        string

	DataDir    string
	ResultsDir string

	RetryDelay    time.Duration
	RetryAttempts int
	RunTimeout    time.Duration

	Debug bool
}

const defaultEvaluationBaseURL = "https://agents-course-unit4-scoring.hf.space"

func LoadSettings() (*Settings, error) {
	e := NewEnvService()

	apiKey := e.Get("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	s := &Settings{
		EvaluationBaseURL:   e.GetDefault("EVALUATION_API_BASE_URL", defaultEvaluationBaseURL),
		GeminiAPIKey:        apiKey,
		GeminiModel:         e.GetDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		HuggingFaceUsername: e.Get("HUGGINGFACE_USERNAME"),
		AgentCodeURL:        e.Get("AGENT_CODE_URL"),
		DataDir:             e.GetDefault("DATA_DIR", "data"),
		ResultsDir:          e.GetDefault("RESULTS_DIR", "results"),
		RetryDelay:          e.GetDuration("RETRY_DELAY", 2*time.Second),
		RetryAttempts:       e.GetInt("RETRY_ATTEMPTS", 3),
		RunTimeout:          e.GetDuration("RUN_TIMEOUT", 10*time.Minute),
		Debug:               e.GetBool("DEBUG", false),
	}
	return s, nil
}

// ResultPath is the directory holding one result file per question for the
// configured model.
func (s *Settings) ResultPath() string {
	return filepath.Join(s.ResultsDir, s.GeminiModel)
}
