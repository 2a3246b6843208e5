package entity

// Question is one GAIA benchmark task as served by the evaluation API.
// Immutable once received.
type Question struct {
	TaskID   string `json:"task_id"`
	Question string `json:"question"`
	FileName string `json:"file_name"`
	Level    string `json:"Level"`
}

// HasFile reports whether the question carries a downloadable attachment.
func (q Question) HasFile() bool {
	return q.FileName != ""
}

// Result pairs a question with its extracted final answer. It is created by
// the terminal workflow stage and never modified afterwards.
type Result struct {
	Question Question `json:"question"`
	Answer   string   `json:"answer"`
}
