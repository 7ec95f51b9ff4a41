package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goadvent/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		day         int
		part        int
		answersPath string
		reportPath  string
		reportPDF   string
		doFetch     bool
		year        int
		session     string
		cacheDir    string
		puzzlePath  string
		verbose     bool
	)

	flag.IntVar(&day, "day", 1, "Puzzle day to solve (1..6)")
	flag.IntVar(&part, "part", 0, "Solve only this part (1 or 2); 0 solves all parts")
	flag.StringVar(&answersPath, "check", "", "Path to a YAML answers manifest to verify computed answers against")
	flag.StringVar(&reportPath, "report", "", "Path to write a Markdown results summary")
	flag.StringVar(&reportPDF, "report.pdf", "", "Path to write a PDF results summary")
	flag.BoolVar(&doFetch, "fetch", false, "Download the day's input (and puzzle text) instead of solving")
	flag.IntVar(&year, "year", 2023, "Event year for -fetch")
	flag.StringVar(&session, "session", os.Getenv("AOC_SESSION"), "adventofcode.com session cookie for -fetch")
	flag.StringVar(&cacheDir, "cache.dir", ".goadvent-cache", "Download cache directory for -fetch")
	flag.StringVar(&puzzlePath, "puzzle", "puzzle.md", "Path for extracted puzzle text with -fetch; empty disables")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// One optional positional argument: the input file path.
	inputPath := "input.txt"
	if flag.NArg() > 1 {
		log.Error().Msg("at most one positional argument (input path) is accepted")
		os.Exit(1)
	}
	if flag.NArg() == 1 {
		inputPath = flag.Arg(0)
	}

	cfg := app.Config{
		InputPath:     inputPath,
		Day:           day,
		Part:          part,
		AnswersPath:   answersPath,
		ReportPath:    reportPath,
		ReportPDFPath: reportPDF,
		Fetch:         doFetch,
		Year:          year,
		SessionToken:  session,
		CacheDir:      cacheDir,
		PuzzlePath:    puzzlePath,
		Verbose:       verbose,
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 for an answers-manifest mismatch, 1 for
		// everything else (I/O, parse, configuration).
		if errors.Is(err, app.ErrAnswerMismatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}
