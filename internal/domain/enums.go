// Package domain defines the core domain models for the agent service.
package domain

// MessageType tags who authored a stored turn.
type MessageType string

const (
	MessageTypeHuman MessageType = "human"
	MessageTypeAI    MessageType = "ai"
)

// Valid reports whether t is one of the known message types.
func (t MessageType) Valid() bool {
	return t == MessageTypeHuman || t == MessageTypeAI
}

// Keys used in the message data object.
const (
	DataKeyRequestID = "request_id"
	DataKeyError     = "error"
)

// ApologyMessage is stored as the assistant turn when a request fails after authentication.
const ApologyMessage = "I apologize, but I encountered an error processing your request."

// DefaultHistoryLimit is the number of recent messages read per request.
const DefaultHistoryLimit = 10
