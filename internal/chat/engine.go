// Package chat holds the assistant transcript and resolves replies
// through an ordered trigger-rule list. Replies are revealed after a
// short simulated delay; the engine itself is synchronous and the UI
// owns the timer, so tests never sleep.
package chat

import (
	"fmt"
	"strings"
	"time"
)

// ReplyDelay is how long the UI waits before revealing a resolved
// reply, imitating the assistant "thinking".
const ReplyDelay = 1500 * time.Millisecond

// PendingText is the placeholder shown while a reply is pending.
const PendingText = "..."

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one transcript entry. The transcript is append-only; the
// only permitted mutation is resolving a pending bot placeholder in
// place, which never changes the message's ID or position.
type Message struct {
	ID      int64
	Role    Role
	Text    string
	Time    time.Time
	Pending bool
}

// Engine owns the transcript. It is not safe for concurrent use; like
// the rest of the app state it is only touched from the event loop.
type Engine struct {
	messages []Message
	prompts  map[int64]string // pending placeholder id -> triggering input
	nextID   int64
	now      func() time.Time
}

// NewEngine returns an engine seeded with the assistant greeting. When
// userName is non-empty the greeting is personalized.
func NewEngine(userName string) *Engine {
	e := &Engine{
		prompts: make(map[int64]string),
		now:     time.Now,
	}
	greeting := "Hello! I'm your MediMind Assistant. I can help with symptom analysis, general medical info, or health tracking. How are you feeling today?"
	if userName != "" {
		greeting = fmt.Sprintf("Hello %s! I'm your MediMind Assistant. How are you feeling today?", userName)
	}
	e.append(RoleBot, greeting, false)
	return e
}

// SetClock overrides the message timestamp clock for tests.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

func (e *Engine) append(role Role, text string, pending bool) Message {
	e.nextID++
	m := Message{ID: e.nextID, Role: role, Text: text, Time: e.now(), Pending: pending}
	e.messages = append(e.messages, m)
	return m
}

// Messages returns a copy of the transcript in order.
func (e *Engine) Messages() []Message {
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// Submit appends the user's message plus a pending bot placeholder and
// returns the placeholder's ID for later resolution. Empty or
// whitespace-only input is a no-op, not an error. Nothing serializes
// overlapping submissions: each caller schedules its own resolution
// and in-flight replies may complete in any delivery order.
func (e *Engine) Submit(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	e.append(RoleUser, text, false)
	placeholder := e.append(RoleBot, PendingText, true)
	e.prompts[placeholder.ID] = text
	return placeholder.ID, true
}

// Resolve replaces the pending placeholder's text with the classified
// reply for the input that produced it. Resolving an ID that is not a
// pending placeholder is a no-op.
func (e *Engine) Resolve(id int64) bool {
	prompt, ok := e.prompts[id]
	if !ok {
		return false
	}
	delete(e.prompts, id)
	for i := range e.messages {
		if e.messages[i].ID == id {
			e.messages[i].Text = Classify(prompt)
			e.messages[i].Pending = false
			return true
		}
	}
	return false
}
