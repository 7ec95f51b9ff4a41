package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hyperifyio/goadvent/internal/almanac"
	"github.com/hyperifyio/goadvent/internal/calibrate"
	"github.com/hyperifyio/goadvent/internal/cubes"
	"github.com/hyperifyio/goadvent/internal/input"
	"github.com/hyperifyio/goadvent/internal/race"
	"github.com/hyperifyio/goadvent/internal/schematic"
	"github.com/hyperifyio/goadvent/internal/scratch"
)

// maxDay is the highest implemented puzzle day.
const maxDay = 6

// Answer is one printed line of a day's output. Day 1 produces a single
// unlabeled answer (the calibration sum); other days label their parts.
type Answer struct {
	// Part is 1 or 2 and positions the answer in an answers manifest.
	Part  int
	Label string
	Value string
}

// wantPart reports whether the selected part filter includes p.
func wantPart(part, p int) bool { return part == 0 || part == p }

type solveFunc func(r io.Reader, part int) ([]Answer, error)

// solvers dispatches a puzzle day to its implementation.
var solvers = map[int]solveFunc{
	1: solveCalibration,
	2: solveCubes,
	3: solveSchematic,
	4: solveScratch,
	5: solveAlmanac,
	6: solveRace,
}

func solveCalibration(r io.Reader, _ int) ([]Answer, error) {
	sum, err := calibrate.SumReader(r)
	if err != nil {
		return nil, err
	}
	return []Answer{{Part: 1, Value: strconv.Itoa(sum)}}, nil
}

func solveCubes(r io.Reader, part int) ([]Answer, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	games, err := cubes.ParseGames(lines)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	if wantPart(part, 1) {
		answers = append(answers, Answer{Part: 1, Label: "part one", Value: strconv.Itoa(cubes.SumPossibleIDs(games))})
	}
	if wantPart(part, 2) {
		answers = append(answers, Answer{Part: 2, Label: "part two", Value: strconv.Itoa(cubes.SumPowers(games))})
	}
	return answers, nil
}

func solveSchematic(r io.Reader, part int) ([]Answer, error) {
	text, err := input.ReadAll(r)
	if err != nil {
		return nil, err
	}
	grid, err := schematic.Parse(text)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	if wantPart(part, 1) {
		answers = append(answers, Answer{Part: 1, Label: "part one", Value: strconv.Itoa(grid.SumPartNumbers())})
	}
	if wantPart(part, 2) {
		answers = append(answers, Answer{Part: 2, Label: "part two", Value: strconv.Itoa(grid.SumGearRatios())})
	}
	return answers, nil
}

func solveScratch(r io.Reader, part int) ([]Answer, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	cards, err := scratch.ParseCards(lines)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	if wantPart(part, 1) {
		answers = append(answers, Answer{Part: 1, Label: "part one", Value: strconv.Itoa(scratch.SumPoints(cards))})
	}
	if wantPart(part, 2) {
		answers = append(answers, Answer{Part: 2, Label: "part two", Value: strconv.Itoa(scratch.CountCards(cards))})
	}
	return answers, nil
}

func solveAlmanac(r io.Reader, part int) ([]Answer, error) {
	text, err := input.ReadAll(r)
	if err != nil {
		return nil, err
	}
	alm, err := almanac.Parse(text)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	if wantPart(part, 1) {
		v, err := alm.LowestLocation()
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{Part: 1, Label: "part one", Value: strconv.FormatUint(v, 10)})
	}
	if wantPart(part, 2) {
		v, err := alm.LowestLocationRanges()
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{Part: 2, Label: "part two", Value: strconv.FormatUint(v, 10)})
	}
	return answers, nil
}

func solveRace(r io.Reader, part int) ([]Answer, error) {
	text, err := input.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	if wantPart(part, 1) {
		races, err := race.Parse(text)
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{Part: 1, Label: "part one", Value: strconv.FormatUint(race.MarginProduct(races), 10)})
	}
	if wantPart(part, 2) {
		kerned, err := race.ParseKerned(text)
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{Part: 2, Label: "part two", Value: strconv.FormatUint(kerned.WaysToBeat(), 10)})
	}
	return answers, nil
}

func solverFor(day int) (solveFunc, error) {
	s, ok := solvers[day]
	if !ok {
		return nil, fmt.Errorf("no solver for day %d", day)
	}
	return s, nil
}
