package prompts

import (
	_ "embed"
)

//go:embed system.txt
var SystemPrompt string

// ExtractionTemplate is the instruction for the second, narrowly-scoped
// model call that strips explanatory prose down to the scored answer. The
// first placeholder is the question, the second the model's full answer.
//
//go:embed extraction.txt
var ExtractionTemplate string
