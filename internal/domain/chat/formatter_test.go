package chat

import (
	"strings"
	"testing"
	"time"

	"healthflow/internal/domain/timeline"
)

func TestFormatContext_Empty(t *testing.T) {
	if got := FormatContext(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := FormatContext([]timeline.Event{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormatContext_LineFormat(t *testing.T) {
	end := timeline.NewDate(2024, time.March, 15)
	events := []timeline.Event{
		{
			Type:        timeline.EventTypeMedication,
			Title:       "Lisinopril 10mg",
			Description: "Blood pressure medication",
			Date:        timeline.NewDate(2024, time.January, 5),
			EndDate:     &end,
		},
		{
			Type:        timeline.EventTypeAppointment,
			Title:       "Cardiology Checkup",
			Description: "Dr. Smith - Annual heart checkup",
			Date:        timeline.NewDate(2024, time.January, 15),
		},
	}

	want := "MEDICATION: Lisinopril 10mg - Blood pressure medication (Date: January 5, 2024 (until March 15, 2024))\n" +
		"APPOINTMENT: Cardiology Checkup - Dr. Smith - Annual heart checkup (Date: January 15, 2024)"

	if got := FormatContext(events); got != want {
		t.Fatalf("unexpected context:\n got=%q\nwant=%q", got, want)
	}
}

func TestFormatContext_OneLinePerEventInInputOrder(t *testing.T) {
	events := timeline.DemoEvents()
	// multilínea no debe agregar líneas
	events[2].Description = "Cholesterol: 180 mg/dL\nBlood Pressure: 120/80"

	got := FormatContext(events)
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("unexpected trailing newline")
	}

	lines := strings.Split(got, "\n")
	if len(lines) != len(events) {
		t.Fatalf("expected %d lines, got %d: %q", len(events), len(lines), got)
	}
	for i, e := range events {
		if !strings.Contains(lines[i], e.Title) {
			t.Fatalf("line %d should be for %q, got %q", i, e.Title, lines[i])
		}
		hasUntil := strings.Contains(lines[i], "(until ")
		if hasUntil != e.HasEndDate() {
			t.Fatalf("line %d: (until present=%v, event has end date=%v", i, hasUntil, e.HasEndDate())
		}
	}
}

func TestFormatContext_UppercasesOpaqueType(t *testing.T) {
	got := FormatContext([]timeline.Event{{
		Type:  "voice-note",
		Title: "Symptom Note",
		Date:  timeline.NewDate(2024, time.February, 10),
	}})
	if !strings.HasPrefix(got, "VOICE-NOTE: Symptom Note - ") {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestSystemPrompt_EmbedsContextAndGuidelines(t *testing.T) {
	ctx := FormatContext(timeline.DemoEvents())
	p := SystemPrompt(ctx)

	for _, want := range []string{
		"HealthFlow+",
		"Current Patient Timeline:\n" + ctx + "\n\nGuidelines:",
		"consult their healthcare provider",
		"Use markdown formatting",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}
