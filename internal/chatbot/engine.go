// Package chatbot holds the empathetic conversation engine that sits
// alongside the reframing and content-matching pipeline.
package chatbot

import (
	"context"
	"log/slog"

	"github.com/upliftbot/uplift/internal/llm"
)

const systemPrompt = `You are an empathetic emotional support companion. Your role is to:
1. Listen actively and validate user feelings
2. Provide supportive, non-judgmental responses
3. Help users feel heard and understood
4. Be warm, genuine, and conversational

Important guidelines:
- Never dismiss or minimize user emotions
- Avoid toxic positivity (don't force happiness)
- Be compassionate and understanding
- Keep responses concise (2-3 sentences max)
- If user mentions crisis situation, acknowledge seriously

You are part of a larger system that also provides positive reframing,
movie quotes, and song recommendations, so focus on being a good
listener and offering emotional validation.`

// fallbackReply keeps the conversation going when the LLM is down.
const fallbackReply = "I'm here to listen. Could you tell me more about how you're feeling?"

// defaultMaxHistory bounds the conversation window sent to the model.
const defaultMaxHistory = 10

// Engine carries one conversation. It is not safe for concurrent use;
// each session owns its own engine.
type Engine struct {
	client     llm.Client
	history    []llm.Message
	maxHistory int
}

// Config holds engine construction parameters.
type Config struct {
	Client     llm.Client
	MaxHistory int // message window, default 10
}

// New creates a conversation engine.
func New(cfg Config) *Engine {
	maxHistory := cfg.MaxHistory
	if maxHistory == 0 {
		maxHistory = defaultMaxHistory
	}
	return &Engine{
		client:     cfg.Client,
		maxHistory: maxHistory,
	}
}

// Respond appends the user message, asks the model for a reply, and
// records it. LLM failures produce a built-in listening reply, never an
// error surfaced to the user.
func (e *Engine) Respond(ctx context.Context, message string) string {
	e.history = append(e.history, llm.Message{Role: "user", Content: message})
	e.trim()

	reply, err := e.client.Chat(ctx, systemPrompt, e.history)
	if err != nil {
		slog.Error("conversation reply failed", "error", err)
		reply = fallbackReply
	}

	e.history = append(e.history, llm.Message{Role: "assistant", Content: reply})
	return reply
}

// Add records a message without calling the model, for wiring external
// events (reframes, matched content) into the context.
func (e *Engine) Add(role, content string) {
	e.history = append(e.history, llm.Message{Role: role, Content: content})
	e.trim()
}

// Len returns the number of messages in the history.
func (e *Engine) Len() int {
	return len(e.history)
}

// Reset clears the conversation.
func (e *Engine) Reset() {
	e.history = nil
}

// trim keeps only the most recent messages within the window.
func (e *Engine) trim() {
	if len(e.history) > e.maxHistory {
		e.history = e.history[len(e.history)-e.maxHistory:]
	}
}
