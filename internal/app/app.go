package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goadvent/internal/cache"
	"github.com/hyperifyio/goadvent/internal/extract"
	"github.com/hyperifyio/goadvent/internal/fetch"
	"github.com/hyperifyio/goadvent/internal/input"
)

// App runs one puzzle day end to end: acquire input, solve, print, and
// optionally check and report.
type App struct {
	cfg Config
	// Stdout is where answers are printed. Defaults to os.Stdout; tests
	// substitute a buffer.
	Stdout io.Writer
}

// Result captures a solved day for reporting.
type Result struct {
	Day     int
	Answers []Answer
	Elapsed time.Duration
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg, Stdout: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.Fetch {
		return a.fetchDay(ctx)
	}
	result, err := a.solve(ctx)
	if err != nil {
		return err
	}

	for _, ans := range result.Answers {
		if ans.Label == "" {
			fmt.Fprintf(a.Stdout, "%s\n", ans.Value)
		} else {
			fmt.Fprintf(a.Stdout, "%s: %s\n", ans.Label, ans.Value)
		}
	}
	log.Info().Int("day", result.Day).Dur("elapsed", result.Elapsed).Msg("solved")

	if a.cfg.AnswersPath != "" {
		manifest, err := LoadManifest(a.cfg.AnswersPath)
		if err != nil {
			return fmt.Errorf("load answers manifest: %w", err)
		}
		if err := manifest.Check(result.Day, result.Answers); err != nil {
			return err
		}
		log.Info().Int("day", result.Day).Msg("answers verified against manifest")
	}

	if a.cfg.ReportPath != "" || a.cfg.ReportPDFPath != "" {
		md := buildReport([]Result{result})
		if a.cfg.ReportPath != "" {
			if err := os.WriteFile(a.cfg.ReportPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			log.Info().Str("out", a.cfg.ReportPath).Msg("wrote report")
		}
		if a.cfg.ReportPDFPath != "" {
			if err := writeReportPDF(md, a.cfg.ReportPDFPath); err != nil {
				return fmt.Errorf("write pdf report: %w", err)
			}
			log.Info().Str("out", a.cfg.ReportPDFPath).Msg("wrote pdf report")
		}
	}
	return nil
}

// solve opens the input for the configured day, holds it for the duration
// of the read, and runs the day's solver.
func (a *App) solve(_ context.Context) (Result, error) {
	solver, err := solverFor(a.cfg.Day)
	if err != nil {
		return Result{}, err
	}
	f, err := input.Open(a.cfg.InputPath)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	start := time.Now()
	answers, err := solver(f, a.cfg.Part)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", a.cfg.Day, err)
	}
	return Result{Day: a.cfg.Day, Answers: answers, Elapsed: time.Since(start)}, nil
}

// fetchDay downloads the day's personal input to InputPath and, when a
// puzzle path is configured, the puzzle description text alongside it.
func (a *App) fetchDay(ctx context.Context) error {
	client := &fetch.Client{
		UserAgent:         "goadvent/" + BuildVersion,
		Session:           a.cfg.SessionToken,
		MaxAttempts:       3,
		PerRequestTimeout: 30 * time.Second,
	}
	if a.cfg.CacheDir != "" {
		client.Cache = &cache.Cache{Dir: a.cfg.CacheDir}
	}

	body, err := client.Input(ctx, a.cfg.Year, a.cfg.Day)
	if err != nil {
		return fmt.Errorf("fetch input: %w", err)
	}
	if err := os.WriteFile(a.cfg.InputPath, body, 0o644); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	log.Info().Int("day", a.cfg.Day).Str("out", a.cfg.InputPath).Msg("wrote puzzle input")

	if a.cfg.PuzzlePath == "" {
		return nil
	}
	page, err := client.PuzzlePage(ctx, a.cfg.Year, a.cfg.Day)
	if err != nil {
		return fmt.Errorf("fetch puzzle page: %w", err)
	}
	text := extract.ArticleText(page)
	if text == "" {
		log.Warn().Int("day", a.cfg.Day).Msg("puzzle page had no description article")
		return nil
	}
	if err := os.WriteFile(a.cfg.PuzzlePath, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write puzzle text: %w", err)
	}
	log.Info().Int("day", a.cfg.Day).Str("out", a.cfg.PuzzlePath).Msg("wrote puzzle text")
	return nil
}
