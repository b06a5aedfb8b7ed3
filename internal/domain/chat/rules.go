package chat

import (
	"fmt"
	"strings"

	"healthflow/internal/domain/timeline"
)

const (
	// UnavailableMessage es la respuesta por defecto cuando ninguna regla aplica.
	UnavailableMessage = "AI is temporarily unavailable. Please add your ANTHROPIC_API_KEY to .env.local file."
	// TroubleMessage se usa cuando el primer content block no es texto.
	TroubleMessage = "I'm having trouble processing that request."
)

// Rule es una respuesta local: Match recibe el mensaje ya en minúsculas.
type Rule struct {
	Name   string
	Match  func(lowerMessage string) bool
	Answer func(events []timeline.Event) string
}

// KeywordRule matchea si el mensaje contiene keyword (case-insensitive).
func KeywordRule(name, keyword string, answer func([]timeline.Event) string) Rule {
	kw := strings.ToLower(keyword)
	return Rule{
		Name:   name,
		Match:  func(lower string) bool { return strings.Contains(lower, kw) },
		Answer: answer,
	}
}

// DefaultRules en orden de evaluación; gana la primera que matchea.
func DefaultRules() []Rule {
	return []Rule{
		KeywordRule("medications", "medication", MedicationAnswer),
		KeywordRule("summary", "summary", SummaryAnswer),
	}
}

func MedicationAnswer(events []timeline.Event) string {
	meds := timeline.OfType(events, timeline.EventTypeMedication)

	lines := make([]string, 0, len(meds))
	for _, m := range meds {
		lines = append(lines, fmt.Sprintf("• %s: %s", m.Title, m.Description))
	}
	return fmt.Sprintf("You have %d medication(s):\n\n%s", len(meds), strings.Join(lines, "\n"))
}

func SummaryAnswer(events []timeline.Event) string {
	return fmt.Sprintf("**Health Summary**\n\n📊 %d total events\n💊 %d medications\n🏥 %d appointments",
		len(events),
		timeline.CountByType(events, timeline.EventTypeMedication),
		timeline.CountByType(events, timeline.EventTypeAppointment),
	)
}

// Fallback evalúa rules en orden. Devuelve el nombre de la regla ("" si fue el default).
func Fallback(rules []Rule, message string, events []timeline.Event) (string, string) {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		if rule.Match == nil || rule.Answer == nil {
			continue
		}
		if rule.Match(lower) {
			return rule.Answer(events), rule.Name
		}
	}
	return UnavailableMessage, ""
}
