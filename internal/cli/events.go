package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"healthflow/internal/domain/timeline"

	"gopkg.in/yaml.v3"
)

// eventsFile acepta una lista de eventos o un objeto con "events".
// JSON también sirve: yaml.v3 lo parsea.
type eventsFile struct {
	Events []timeline.Input `yaml:"events"`
}

// loadEvents lee path ("" => timeline de ejemplo). Los eventos inválidos se
// reportan en warn y se descartan.
func loadEvents(path string, warn io.Writer) ([]timeline.Event, error) {
	if strings.TrimSpace(path) == "" {
		return timeline.DemoEvents(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}

	inputs, err := decodeInputs(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	events, rejected := timeline.Normalize(inputs)
	for _, rej := range rejected {
		fmt.Fprintf(warn, "warning: skipping %v\n", rej)
	}
	return events, nil
}

func decodeInputs(raw []byte) ([]timeline.Input, error) {
	var list []timeline.Input
	if err := yaml.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped eventsFile
	if err := yaml.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Events, nil
}
