package main

import (
	"fmt"

	"github.com/maltehedderich/agents-course-gaia-challenge/internal/di"
	"github.com/maltehedderich/agents-course-gaia-challenge/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch all questions and answer them through the workflow engine",
	Long: `Fetches the question set from the evaluation API and runs each question
through the workflow engine. Questions with an existing result file are
skipped, so an interrupted run can be resumed by invoking run again.`,
	RunE: runQuestions,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	settings, err := env.LoadSettings()
	if err != nil {
		return err
	}

	container, err := di.NewContainer(settings)
	if err != nil {
		return err
	}
	defer container.Close()

	container.Logger.Info("Starting run",
		"model", settings.GeminiModel,
		"evaluationAPI", settings.EvaluationBaseURL,
	)

	summary, err := container.Runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Questions: %d total, %d answered, %d skipped, %d failed\n",
		summary.Total, summary.Answered, summary.Skipped, summary.Failed)
	return nil
}
