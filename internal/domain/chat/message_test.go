package chat

import (
	"testing"
	"time"

	"healthflow/internal/domain/timeline"
)

func TestDescribeEvent(t *testing.T) {
	demo := timeline.DemoEvents()

	got := DescribeEvent(demo[0])
	want := "📋 **Lisinopril 10mg**\n\nBlood pressure medication\n\n📅 Date: January 5, 2024 - March 15, 2024\n\n💊 Type: medication"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	got = DescribeEvent(demo[1])
	want = "📋 **Cardiology Checkup**\n\nDr. Smith - Annual heart checkup\n\n📅 Date: January 15, 2024\n\n💊 Type: appointment"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestNewMessage(t *testing.T) {
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.FixedZone("X", 3600))
	m := NewMessage(RoleAssistant, "Hi there", now)
	if m.ID == "" || m.Role != RoleAssistant || m.Content != "Hi there" {
		t.Fatalf("unexpected message %+v", m)
	}
	if !m.Timestamp.Equal(now) || m.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %s", m.Timestamp)
	}
	if other := NewMessage(RoleUser, "x", now); other.ID == m.ID {
		t.Fatalf("expected unique ids")
	}
}
