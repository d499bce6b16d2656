package shared

// MessageType identifies the kind of a message sent to a frontend.
type MessageType int

// Message type constants. The numeric values are part of the wire format
// and must stay stable for connected frontends.
const (
	MessageTypeText         MessageType = 0 // text output
	MessageTypeClear        MessageType = 1 // clear screen
	MessageTypeMode         MessageType = 2 // mode switch (e.g. "basic")
	MessageTypeSession      MessageType = 3 // session ID handshake
	MessageTypeInputControl MessageType = 4 // enable/disable input line
	MessageTypePrompt       MessageType = 5 // prompt symbol update
	MessageTypeQuit         MessageType = 6 // session ended (QUIT)
)

// Message is the envelope for everything the interpreter sends to a
// frontend, over a channel locally or as JSON over a websocket.
type Message struct {
	Type    MessageType `json:"type"`
	Content string      `json:"content"`
	// For TEXT: suppress the automatic newline in the frontend.
	NoNewline bool `json:"noNewline,omitempty"`

	// For SESSION
	SessionID string `json:"sessionId,omitempty"`

	// For PROMPT / INPUT_CONTROL
	InputEnabled *bool  `json:"inputEnabled,omitempty"`
	PromptSymbol string `json:"promptSymbol,omitempty"`

	// For MODE
	Mode string `json:"mode,omitempty"`
}
