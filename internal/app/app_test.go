package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const day1Input = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

const day2Input = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

const day6Input = `Time:      7  15   30
Distance:  9  40  200
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func runApp(t *testing.T, cfg Config) string {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out bytes.Buffer
	a.Stdout = &out
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestRun_Day1PrintsSingleSum(t *testing.T) {
	out := runApp(t, Config{InputPath: writeInput(t, day1Input), Day: 1})
	if out != "281\n" {
		t.Fatalf("stdout = %q, want \"281\\n\"", out)
	}
}

func TestRun_Day2PrintsBothParts(t *testing.T) {
	out := runApp(t, Config{InputPath: writeInput(t, day2Input), Day: 2})
	if out != "part one: 8\npart two: 2286\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRun_PartFilter(t *testing.T) {
	out := runApp(t, Config{InputPath: writeInput(t, day6Input), Day: 6, Part: 2})
	if out != "part two: 71503\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRun_MissingInputFails(t *testing.T) {
	a, err := New(Config{InputPath: filepath.Join(t.TempDir(), "missing.txt"), Day: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Stdout = &bytes.Buffer{}
	if err := a.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing input")
	}
}

func TestRun_AnswersManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "answers.yaml")
	if err := os.WriteFile(manifest, []byte("days:\n  1: [\"281\"]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	out := runApp(t, Config{InputPath: writeInput(t, day1Input), Day: 1, AnswersPath: manifest})
	if out != "281\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRun_AnswersManifestMismatch(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "answers.yaml")
	if err := os.WriteFile(manifest, []byte("days:\n  1: [\"999\"]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	a, err := New(Config{InputPath: writeInput(t, day1Input), Day: 1, AnswersPath: manifest})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Stdout = &bytes.Buffer{}
	err = a.Run(context.Background())
	if !errors.Is(err, ErrAnswerMismatch) {
		t.Fatalf("err = %v, want ErrAnswerMismatch", err)
	}
}

func TestRun_WritesReport(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.md")
	runApp(t, Config{InputPath: writeInput(t, day1Input), Day: 1, ReportPath: report})
	b, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "| 1 | - | 281 |") {
		t.Fatalf("report missing result row:\n%s", b)
	}
}

func TestRun_WritesPDFReport(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "report.pdf")
	runApp(t, Config{InputPath: writeInput(t, day1Input), Day: 1, ReportPDFPath: pdfPath})
	b, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF (starts %q)", b[:min(8, len(b))])
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		cfg Config
		ok  bool
	}{
		{Config{InputPath: "input.txt", Day: 1}, true},
		{Config{InputPath: "input.txt", Day: 6, Part: 2}, true},
		{Config{InputPath: "input.txt", Day: 0}, false},
		{Config{InputPath: "input.txt", Day: 7}, false},
		{Config{InputPath: "input.txt", Day: 1, Part: 3}, false},
		{Config{InputPath: "", Day: 1}, false},
		{Config{InputPath: "input.txt", Day: 1, Fetch: true, Year: 1999}, false},
		{Config{InputPath: "input.txt", Day: 1, Fetch: true, Year: 2023}, true},
	}
	for _, c := range cases {
		err := ValidateConfig(c.cfg)
		if c.ok && err != nil {
			t.Fatalf("ValidateConfig(%+v) = %v, want nil", c.cfg, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("ValidateConfig(%+v) = nil, want error", c.cfg)
		}
	}
}

func TestSolverRegistryCoversAllDays(t *testing.T) {
	for day := 1; day <= maxDay; day++ {
		if _, err := solverFor(day); err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
	}
	if _, err := solverFor(maxDay + 1); err == nil {
		t.Fatalf("expected error past maxDay")
	}
}
