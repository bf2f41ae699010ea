package domain

// AgentRequest is the body accepted by the agent endpoint.
type AgentRequest struct {
	Query     string `json:"query"`
	UserID    string `json:"user_id"`
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id"`
}

// AgentResponse reports whether the request was fully processed.
type AgentResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is returned for requests rejected before processing.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
