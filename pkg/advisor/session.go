package advisor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// greetingText seeds every new conversation.
const greetingText = "Hi! I'm your AI-powered investment advisor. Tell me about your investment goals, risk tolerance, age, and time horizon, and I'll provide personalized portfolio recommendations."

// SuggestedQueries are offered to the user before the first submission and
// again after a transport failure.
var SuggestedQueries = []string{
	"I'm 25, want aggressive growth for retirement in 40 years",
	"I need low-risk investments with steady income for retirement",
	"I have $50K for 10 years, moderate risk tolerance",
	"Help me invest $10K for my child's college in 15 years",
}

// Message is one entry in the conversation transcript. Only assistant
// messages carry a recommendation, and only when one was produced.
type Message struct {
	ID             string          `json:"id"`
	Text           string          `json:"text"`
	IsUser         bool            `json:"isUser"`
	Timestamp      time.Time       `json:"timestamp"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// Session holds one client's conversation state: an append-only message
// log, the single current-recommendation slot and the in-flight-request
// gate. Everything is in memory and discarded when the session ends.
type Session struct {
	mu       sync.Mutex
	messages []Message
	current  *Recommendation
	loading  bool
}

// NewSession creates a session seeded with the advisor greeting.
func NewSession() *Session {
	s := &Session{}
	s.AddMessage(greetingText, false, nil)
	return s
}

// AddMessage appends a message with a freshly generated unique id and the
// current time, and returns it. Messages are never edited or removed.
func (s *Session) AddMessage(text string, isUser bool, rec *Recommendation) Message {
	msg := Message{
		ID:             uuid.New().String(),
		Text:           text,
		IsUser:         isUser,
		Timestamp:      time.Now(),
		Recommendation: rec,
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}

// Messages returns a copy of the transcript in insertion order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// SetCurrentRecommendation replaces the current-recommendation slot.
func (s *Session) SetCurrentRecommendation(rec *Recommendation) {
	s.mu.Lock()
	s.current = rec
	s.mu.Unlock()
}

// CurrentRecommendation returns the recommendation currently on display,
// or nil.
func (s *Session) CurrentRecommendation() *Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// BeginRequest marks a request as in flight. It returns false when one is
// already outstanding; the caller must ignore the submission, not queue it.
func (s *Session) BeginRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

// EndRequest clears the in-flight gate.
func (s *Session) EndRequest() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Loading reports whether a request is outstanding.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
