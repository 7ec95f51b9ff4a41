package app

import (
	"errors"
	"fmt"
)

// Config holds runtime configuration for the application. It is assembled
// from flags in cmd/goadvent; the solve path reads nothing else.
type Config struct {
	// InputPath is the puzzle input file. Defaults to input.txt.
	InputPath string
	// Day selects the puzzle, 1 through 6.
	Day int
	// Part selects a single part for days with two; 0 solves all parts.
	// Day 1 has a single answer and ignores Part.
	Part int

	// AnswersPath, when set, names a YAML manifest of expected answers to
	// check computed answers against.
	AnswersPath string

	// ReportPath / ReportPDFPath, when set, receive a results summary.
	ReportPath    string
	ReportPDFPath string

	// Fetch mode: download the day's input and puzzle text instead of
	// solving. SessionToken is the adventofcode.com session cookie.
	Fetch        bool
	Year         int
	SessionToken string
	CacheDir     string
	PuzzlePath   string

	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.Day < 1 || cfg.Day > maxDay {
		return fmt.Errorf("config: day must be 1..%d, got %d", maxDay, cfg.Day)
	}
	if cfg.Part < 0 || cfg.Part > 2 {
		return fmt.Errorf("config: part must be 0, 1 or 2, got %d", cfg.Part)
	}
	if cfg.InputPath == "" {
		return errors.New("config: input path is required")
	}
	if cfg.Fetch && cfg.Year < 2015 {
		return fmt.Errorf("config: year %d predates the event", cfg.Year)
	}
	return nil
}
