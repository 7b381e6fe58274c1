package dto

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Message   string `json:"message" validate:"required"`
}

type ToolCallResponse struct {
	Tool       string `json:"tool"`
	Status     string `json:"status"`
	Detail     string `json:"detail,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type ChatResponse struct {
	SessionID   string             `json:"session_id"`
	Intent      string             `json:"intent"`
	Reply       string             `json:"reply"`
	MissingInfo []string           `json:"missing_info,omitempty"`
	ToolCalls   []ToolCallResponse `json:"tool_calls,omitempty"`
}
