package chat

import (
	"fmt"
	"strings"

	"healthflow/internal/domain/timeline"
)

// FormatContext serializa el timeline para el prompt: una línea por evento,
// en el orden recibido (no ordena).
//
//	MEDICATION: Lisinopril 10mg - Blood pressure medication (Date: January 5, 2024 (until March 15, 2024))
func FormatContext(events []timeline.Event) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, formatLine(e))
	}
	return strings.Join(lines, "\n")
}

func formatLine(e timeline.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s - %s (Date: %s",
		strings.ToUpper(singleLine(string(e.Type))),
		singleLine(e.Title),
		singleLine(e.Description),
		e.Date.Human(),
	)
	if e.HasEndDate() {
		fmt.Fprintf(&b, " (until %s)", e.EndDate.Human())
	}
	b.WriteString(")")
	return b.String()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine evita que un campo multilínea rompa "una línea por evento".
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
