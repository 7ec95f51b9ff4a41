package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	content := `days:
  1: ["281"]
  2: ["8", "2286"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Days) != 2 || m.Days[2][1] != "2286" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestLoadManifest_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte("days: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestManifestCheck(t *testing.T) {
	m := Manifest{Days: map[int][]string{
		2: {"8", "2286"},
	}}

	ok := []Answer{{Part: 1, Label: "part one", Value: "8"}, {Part: 2, Label: "part two", Value: "2286"}}
	if err := m.Check(2, ok); err != nil {
		t.Fatalf("Check: %v", err)
	}

	bad := []Answer{{Part: 1, Label: "part one", Value: "9"}}
	if err := m.Check(2, bad); !errors.Is(err, ErrAnswerMismatch) {
		t.Fatalf("err = %v, want ErrAnswerMismatch", err)
	}

	// Unrecorded day: nothing to check.
	if err := m.Check(4, bad); err != nil {
		t.Fatalf("Check unrecorded day: %v", err)
	}

	// Unrecorded part: skipped.
	partial := Manifest{Days: map[int][]string{2: {"8"}}}
	if err := partial.Check(2, []Answer{{Part: 2, Value: "anything"}}); err != nil {
		t.Fatalf("Check unrecorded part: %v", err)
	}
}

func TestBuildReport(t *testing.T) {
	md := buildReport([]Result{{
		Day: 2,
		Answers: []Answer{
			{Part: 1, Label: "part one", Value: "8"},
			{Part: 2, Label: "part two", Value: "2286"},
		},
	}})
	for _, want := range []string{"| Day | Part | Answer |", "| 2 | 1 | 8 |", "| 2 | 2 | 2286 |"} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}
