package bot

import (
	"context"
	"fmt"
	"strings"

	"restobot-be/pkg/store"
)

// Reply is one outbound message unit: plain text or a titled card.
type Reply struct {
	Type   string   `json:"type"` // "text" | "card"
	Title  string   `json:"title,omitempty"`
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}

const (
	ReplyTypeText = "text"
	ReplyTypeCard = "card"
)

// Text builds a plain text reply.
func Text(format string, args ...interface{}) Reply {
	if len(args) == 0 {
		return Reply{Type: ReplyTypeText, Text: format}
	}
	return Reply{Type: ReplyTypeText, Text: fmt.Sprintf(format, args...)}
}

// plain builds a text reply from an already-assembled string, without printf
// interpretation.
func plain(text string) Reply {
	return Reply{Type: ReplyTypeText, Text: text}
}

// Card builds a structured card reply.
func Card(title, text string, images ...string) Reply {
	return Reply{Type: ReplyTypeCard, Title: title, Text: text, Images: images}
}

// Turn carries everything a step handler may touch: the mutable profile and
// the user's utterance for this turn.
type Turn struct {
	Profile *store.ConversationProfile
	Text    string
}

// Lower returns the lowercased utterance for keyword matching.
func (t *Turn) Lower() string {
	return strings.ToLower(strings.TrimSpace(t.Text))
}

// StepResult is a step handler's verdict. An empty Next with Complete unset
// keeps the conversation on the same step (re-prompt). Complete clears the
// active intent, step and context; ClearCart additionally empties the cart.
type StepResult struct {
	Replies   []Reply
	Next      string
	Complete  bool
	ClearCart bool
}

// StepHandler advances one step of a flow.
type StepHandler func(ctx context.Context, t *Turn) StepResult

// Flow is a named step graph. Definitions are built once at engine
// construction and never mutated.
type Flow struct {
	Name    string
	Initial string
	Steps   map[string]StepHandler
}

// stay re-prompts without moving.
func stay(replies ...Reply) StepResult {
	return StepResult{Replies: replies}
}

// goTo transitions to the named step.
func goTo(next string, replies ...Reply) StepResult {
	return StepResult{Replies: replies, Next: next}
}

// done completes the flow and resets intent/step/context.
func done(replies ...Reply) StepResult {
	return StepResult{Replies: replies, Complete: true}
}

// doneClearCart completes the flow and empties the cart as well.
func doneClearCart(replies ...Reply) StepResult {
	return StepResult{Replies: replies, Complete: true, ClearCart: true}
}
