package input

import "context"

// RunSummary reports one driver invocation over the full question set.
type RunSummary struct {
	Total    int
	Answered int
	Skipped  int
	Failed   int
}

type QuestionRunner interface {
	Run(ctx context.Context) (*RunSummary, error)
}
