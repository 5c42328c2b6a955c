package emotion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/upliftbot/uplift/internal/llm"
)

// Transformer reframes negative statements into positive perspectives.
type Transformer struct {
	client llm.Client
	style  string
}

// NewTransformer creates a transformer. Unknown styles fall back to the
// default register.
func NewTransformer(client llm.Client, style string) *Transformer {
	if _, ok := stylePrompts[style]; !ok {
		style = DefaultStyle
	}
	return &Transformer{client: client, style: style}
}

// Reframe turns the original statement into a positive perspective for
// the given emotion. On any failure it returns a built-in validation
// message instead of an error: a broken LLM call must not break the
// conversation.
func (t *Transformer) Reframe(ctx context.Context, original, feeling string) string {
	prompt := fmt.Sprintf(stylePrompts[t.style], original, feeling)

	reframed, err := t.client.Complete(ctx, "", prompt)
	if err != nil {
		slog.Error("reframe failed", "style", t.style, "error", err)
		return fmt.Sprintf("I hear you. It's okay to feel %s. You're not alone in this, "+
			"and these feelings are valid. Sometimes just acknowledging how we feel "+
			"is an important first step.", feeling)
	}
	return strings.TrimSpace(reframed)
}

// SetStyle switches the reframing register; unknown styles are ignored.
func (t *Transformer) SetStyle(style string) {
	if _, ok := stylePrompts[style]; ok {
		t.style = style
	}
}

// Style returns the current reframing register.
func (t *Transformer) Style() string {
	return t.style
}
