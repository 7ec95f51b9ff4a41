package app

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// ErrAnswerMismatch is returned when a computed answer disagrees with the
// answers manifest. The CLI maps it to a distinct exit code.
var ErrAnswerMismatch = errors.New("answer mismatch")

// Manifest records expected answers per day, in part order. Day 1 has a
// single entry; two-part days have up to two.
//
//	days:
//	  1: ["281"]
//	  2: ["8", "2286"]
type Manifest struct {
	Days map[int][]string `yaml:"days"`
}

// LoadManifest reads a YAML answers manifest.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("parse yaml: %w", err)
	}
	return m, nil
}

// Check compares answers for a day against the manifest. Days or parts the
// manifest does not record are skipped rather than failed, so a partial
// manifest stays useful while puzzles are in progress.
func (m Manifest) Check(day int, answers []Answer) error {
	expected, ok := m.Days[day]
	if !ok {
		return nil
	}
	for _, ans := range answers {
		idx := ans.Part - 1
		if idx < 0 || idx >= len(expected) || expected[idx] == "" {
			continue
		}
		if ans.Value != expected[idx] {
			return fmt.Errorf("%w: day %d part %d: got %s, want %s",
				ErrAnswerMismatch, day, ans.Part, ans.Value, expected[idx])
		}
	}
	return nil
}
