package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gaia",
	Short: "Answer GAIA benchmark questions with a tool-calling Gemini agent",
	Long: `gaia fetches questions from the agents-course scoring API, answers each one
by driving a Gemini model through a step-based workflow (file download and
ingestion, model inference, tool execution, answer extraction), persists one
result file per question, and submits the collected answers for scoring.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}
