// Package results persists one result file per question, keyed by task id.
// Existing files make the driver resumable: answered questions are skipped
// on subsequent invocations.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/domain/entity"
)

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Exists(taskID string) bool {
	_, err := os.Stat(s.path(taskID))
	return err == nil
}

func (s *Store) Save(result entity.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result %s: %w", result.Question.TaskID, err)
	}

	// Write-then-rename so a crash never leaves a truncated result behind.
	tmp := s.path(result.Question.TaskID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write result %s: %w", result.Question.TaskID, err)
	}
	if err := os.Rename(tmp, s.path(result.Question.TaskID)); err != nil {
		return fmt.Errorf("rename result %s: %w", result.Question.TaskID, err)
	}
	return nil
}

func (s *Store) Load(taskID string) (*entity.Result, error) {
	data, err := os.ReadFile(s.path(taskID))
	if err != nil {
		return nil, fmt.Errorf("read result %s: %w", taskID, err)
	}

	var result entity.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", taskID, err)
	}
	return &result, nil
}

// All returns every persisted result, ordered by task id.
func (s *Store) All() ([]entity.Result, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	sort.Strings(matches)

	results := make([]entity.Result, 0, len(matches))
	for _, match := range matches {
		taskID := filepath.Base(match)
		taskID = taskID[:len(taskID)-len(".json")]
		result, err := s.Load(taskID)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

func (s *Store) path(taskID string) string {
	return filepath.Join(s.dir, taskID+".json")
}
