package main

import (
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/application/port/output"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/di"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit all persisted results for scoring",
	RunE:  submitResults,
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func submitResults(cmd *cobra.Command, _ []string) error {
	settings, err := env.LoadSettings()
	if err != nil {
		return err
	}
	if settings.HuggingFaceUsername == "" {
		return fmt.Errorf("HUGGINGFACE_USERNAME is not set")
	}

	container, err := di.NewContainer(settings)
	if err != nil {
		return err
	}
	defer container.Close()

	collected, err := container.Store.All()
	if err != nil {
		return err
	}
	if len(collected) == 0 {
		return fmt.Errorf("no results to submit, run 'gaia run' first")
	}

	answers := make([]output.SubmittedAnswer, 0, len(collected))
	for _, result := range collected {
		answers = append(answers, output.SubmittedAnswer{
			TaskID:          result.Question.TaskID,
			SubmittedAnswer: result.Answer,
		})
	}

	container.Logger.Info("Submitting answers", "count", len(answers))
	scored, err := container.Evaluation.Submit(cmd.Context(), output.SubmissionRequest{
		Username:  settings.HuggingFaceUsername,
		AgentCode: settings.AgentCodeURL,
		Answers:   answers,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Score: %.1f%% (%d/%d correct)\n", scored.Score, scored.CorrectCount, scored.TotalAttempted)
	if scored.Message != "" {
		fmt.Println(scored.Message)
	}
	return nil
}
