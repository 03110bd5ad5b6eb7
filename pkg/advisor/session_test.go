package advisor

import (
	"strings"
	"testing"
)

func TestNewSessionSeedsGreeting(t *testing.T) {
	t.Parallel()

	session := NewSession()
	messages := session.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(messages))
	}
	greeting := messages[0]
	if greeting.IsUser {
		t.Fatal("greeting must be an assistant message")
	}
	if !strings.Contains(greeting.Text, "investment advisor") {
		t.Fatalf("unexpected greeting: %q", greeting.Text)
	}
	if greeting.ID == "" || greeting.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp on greeting: %+v", greeting)
	}
}

func TestSessionAddMessage(t *testing.T) {
	t.Parallel()

	session := NewSession()
	first := session.AddMessage("grow my savings", true, nil)
	rec := MockRecommendation()
	second := session.AddMessage("here is a recommendation", false, &rec)

	if first.ID == second.ID {
		t.Fatal("expected unique message ids")
	}
	messages := session.Messages()
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if !messages[1].IsUser || messages[1].Recommendation != nil {
		t.Fatalf("unexpected user message: %+v", messages[1])
	}
	if messages[2].Recommendation == nil {
		t.Fatal("expected recommendation attached to assistant message")
	}
}

func TestSessionMessagesReturnsCopy(t *testing.T) {
	t.Parallel()

	session := NewSession()
	messages := session.Messages()
	messages[0].Text = "mutated"
	if session.Messages()[0].Text == "mutated" {
		t.Fatal("expected transcript copy, not shared slice")
	}
}

func TestSessionCurrentRecommendation(t *testing.T) {
	t.Parallel()

	session := NewSession()
	if session.CurrentRecommendation() != nil {
		t.Fatal("expected empty slot initially")
	}

	first := MockRecommendation()
	session.SetCurrentRecommendation(&first)
	second := MockRecommendation()
	second.RiskScore = 3
	session.SetCurrentRecommendation(&second)

	current := session.CurrentRecommendation()
	if current == nil || current.RiskScore != 3 {
		t.Fatalf("expected slot replaced, got %+v", current)
	}
}

func TestSessionRequestGate(t *testing.T) {
	t.Parallel()

	session := NewSession()
	if session.Loading() {
		t.Fatal("expected idle session")
	}
	if !session.BeginRequest() {
		t.Fatal("expected first BeginRequest to succeed")
	}
	if session.BeginRequest() {
		t.Fatal("expected second submission to be rejected, not queued")
	}
	session.EndRequest()
	if !session.BeginRequest() {
		t.Fatal("expected BeginRequest to succeed after EndRequest")
	}
}
