package binding

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// ExportJSON serializes parsed bindings back to keybindings JSON. The
// disable marker is restored on disabled commands so the output round
// trips through ParseBytes.
func ExportJSON(bindings []*Parsed) ([]byte, error) {
	out := []byte("[]")

	for i, b := range bindings {
		command := b.Command
		if b.Disabled {
			command = "-" + command
		}

		var err error
		out, err = sjson.SetBytes(out, fmt.Sprintf("%d.key", i), b.SequenceString())
		if err != nil {
			return nil, fmt.Errorf("exporting binding %d: %w", i, err)
		}
		out, err = sjson.SetBytes(out, fmt.Sprintf("%d.command", i), command)
		if err != nil {
			return nil, fmt.Errorf("exporting binding %d: %w", i, err)
		}
		if b.When != "" {
			out, err = sjson.SetBytes(out, fmt.Sprintf("%d.when", i), b.When)
			if err != nil {
				return nil, fmt.Errorf("exporting binding %d: %w", i, err)
			}
		}
		if b.SourceEditor != "" {
			out, err = sjson.SetBytes(out, fmt.Sprintf("%d.sourceEditor", i), b.SourceEditor)
			if err != nil {
				return nil, fmt.Errorf("exporting binding %d: %w", i, err)
			}
		}
	}

	return out, nil
}
