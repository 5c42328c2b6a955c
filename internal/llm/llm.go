// Package llm provides chat-completion clients for the providers the
// bot can run against.
package llm

import "context"

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a synchronous chat-completion backend.
type Client interface {
	// Complete sends a single user prompt under a system prompt.
	Complete(ctx context.Context, system, user string) (string, error)

	// Chat sends a full conversation history.
	Chat(ctx context.Context, system string, messages []Message) (string, error)
}
