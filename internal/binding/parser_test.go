package binding

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"
)

func TestParseBytes(t *testing.T) {
	data := []byte(`[
		{"key": "cmd+p", "command": "workbench.action.quickOpen", "sourceEditor": "vscode"},
		{"key": "cmd+k cmd+s", "command": "workbench.action.files.saveAll", "when": "editorTextFocus"},
		{"key": "cmd+p", "command": "-git.pull"}
	]`)

	parsed, skipped, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("len(skipped) = %d, want 0", len(skipped))
	}
	if len(parsed) != 3 {
		t.Fatalf("len(parsed) = %d, want 3", len(parsed))
	}

	if parsed[0].SourceEditor != "vscode" {
		t.Errorf("SourceEditor = %q, want %q", parsed[0].SourceEditor, "vscode")
	}
	if !parsed[1].IsMultiChord {
		t.Error("parsed[1].IsMultiChord = false, want true")
	}
	if parsed[1].When != "editorTextFocus" {
		t.Errorf("parsed[1].When = %q", parsed[1].When)
	}
	if !parsed[2].Disabled || parsed[2].Command != "git.pull" {
		t.Errorf("parsed[2] = {Command: %q, Disabled: %v}, want {git.pull, true}",
			parsed[2].Command, parsed[2].Disabled)
	}
}

func TestParseBytes_NotASequence(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"object", `{"key": "cmd+p", "command": "x"}`},
		{"string", `"cmd+p"`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseBytes([]byte(tt.data), DefaultOptions())
			if !errors.Is(err, ErrNotSequence) {
				t.Errorf("error = %v, want ErrNotSequence", err)
			}
		})
	}
}

func TestParseBytes_SkipsBadRecords(t *testing.T) {
	data := []byte(`[
		{"key": "cmd+p", "command": "files.open"},
		{"command": "missing.key"},
		{"key": 42, "command": "numeric.key"},
		{"key": "cmd+q"},
		{"key": "cmd+w", "command": "files.close", "when": 7},
		"not an object"
	]`)

	parsed, skipped, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("len(parsed) = %d, want 1", len(parsed))
	}
	if parsed[0].Command != "files.open" {
		t.Errorf("parsed[0].Command = %q", parsed[0].Command)
	}
	if len(skipped) != 5 {
		t.Fatalf("len(skipped) = %d, want 5: %+v", len(skipped), skipped)
	}
	wantReasons := []string{
		"missing key",
		"key is not a string",
		"missing command",
		"when is not a string",
		"record is not an object",
	}
	for i, want := range wantReasons {
		if skipped[i].Reason != want {
			t.Errorf("skipped[%d].Reason = %q, want %q", i, skipped[i].Reason, want)
		}
	}
}

func TestParseBytes_TrailingComma(t *testing.T) {
	// Editor keybindings files routinely carry a trailing comma after
	// the last record; it must not cost a record or produce a skip.
	data := []byte(`[
		{"key": "cmd+p", "command": "files.open"},
	]`)

	parsed, skipped, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("len(skipped) = %d, want 0: %+v", len(skipped), skipped)
	}
	if len(parsed) != 1 {
		t.Fatalf("len(parsed) = %d, want 1", len(parsed))
	}
	if parsed[0].Command != "files.open" {
		t.Errorf("parsed[0].Command = %q, want %q", parsed[0].Command, "files.open")
	}
}

func TestParseBytes_EmptyArray(t *testing.T) {
	parsed, skipped, err := ParseBytes([]byte(`[]`), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(parsed) != 0 || len(skipped) != 0 {
		t.Errorf("parsed = %d, skipped = %d, want 0, 0", len(parsed), len(skipped))
	}
}

func TestExportJSON_RoundTrip(t *testing.T) {
	bindings := []*Parsed{
		FromRecord(Record{Key: "cmd+p", Command: "workbench.action.quickOpen", SourceEditor: "vscode"}, DefaultOptions()),
		FromRecord(Record{Key: "cmd+k cmd+s", Command: "workbench.action.files.saveAll", When: "editorTextFocus"}, DefaultOptions()),
		FromRecord(Record{Key: "cmd+p", Command: "-git.pull"}, DefaultOptions()),
	}

	data, err := ExportJSON(bindings)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("export is not valid JSON: %s", data)
	}

	again, skipped, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("re-parse error = %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("re-parse skipped %d records", len(skipped))
	}
	if len(again) != len(bindings) {
		t.Fatalf("len = %d, want %d", len(again), len(bindings))
	}

	for i := range bindings {
		if again[i].SequenceString() != bindings[i].SequenceString() {
			t.Errorf("binding %d key = %q, want %q", i, again[i].SequenceString(), bindings[i].SequenceString())
		}
		if again[i].Command != bindings[i].Command {
			t.Errorf("binding %d command = %q, want %q", i, again[i].Command, bindings[i].Command)
		}
		if again[i].Disabled != bindings[i].Disabled {
			t.Errorf("binding %d disabled = %v, want %v", i, again[i].Disabled, bindings[i].Disabled)
		}
		if again[i].When != bindings[i].When {
			t.Errorf("binding %d when = %q, want %q", i, again[i].When, bindings[i].When)
		}
	}
}
