package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// Message is one turn in a conversation: user text, model text, a batch of
// function-call requests, or one function-call result. FileURI references an
// ingested attachment and is rendered as a file part by the LLM adapter.
type Message struct {
	Role       MessageRole
	Content    string
	FileURI    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// ToolCall is a single function invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}
