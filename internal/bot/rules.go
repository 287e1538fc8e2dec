package bot

import (
	"context"
	"strings"

	"github.com/medassist/medassist/internal/chat"
)

// Canned replies. Exported so tests and callers can compare verbatim.
const (
	AppointmentReply = "📅 You can book an appointment by calling our reception at +91-1234567890."
	VisitingReply    = "🕙 Visiting hours are 10 AM - 1 PM and 5 PM - 7 PM daily."
	EmergencyReply   = "⚠️ This seems urgent. Please call 108 or go to the nearest emergency room immediately."
	DepartmentReply  = "🏥 We have Cardiology, Neurology, Pediatrics, and General Medicine departments."
	GreetingReply    = "Hello 👋 I’m your hospital assistant bot. How can I help you today?"
	FallbackReply    = "I can help with appointments, visiting hours, departments, and emergencies."
)

// Rule pairs trigger substrings (OR-combined) with a reply.
type Rule struct {
	Triggers []string
	Reply    string
}

// DefaultRules is the helpline rule table. Order is a priority list, not a
// set: the first rule whose trigger is contained in the lower-cased input
// wins, which is what resolves overlaps like "emergency department" to the
// emergency reply. Matching is plain substring containment, so "hi" inside
// another word counts as a greeting.
func DefaultRules() []Rule {
	return []Rule{
		{Triggers: []string{"appointment"}, Reply: AppointmentReply},
		{Triggers: []string{"visiting hours", "visit time"}, Reply: VisitingReply},
		{Triggers: []string{"emergency", "chest pain"}, Reply: EmergencyReply},
		{Triggers: []string{"department", "doctor"}, Reply: DepartmentReply},
		{Triggers: []string{"hello", "hi"}, Reply: GreetingReply},
	}
}

// Rules answers from a fixed ordered rule table. It performs no I/O and the
// table is read-only, so a single instance is safe for concurrent requests.
type Rules struct {
	rules []Rule
}

// NewRules returns a rule-based strategy over DefaultRules.
func NewRules() *Rules {
	return &Rules{rules: DefaultRules()}
}

// Reply matches the last message of the history against the rule table.
// It fails only when the history is empty.
func (s *Rules) Reply(_ context.Context, history []chat.Message) (string, error) {
	utterance, err := chat.LastUserContent(history)
	if err != nil {
		return "", err
	}
	return s.match(utterance), nil
}

func (s *Rules) match(utterance string) string {
	in := strings.ToLower(utterance)
	for _, rule := range s.rules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(in, trigger) {
				return rule.Reply
			}
		}
	}
	return FallbackReply
}
