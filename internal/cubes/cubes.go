// Package cubes solves the cube-drawing game: each input line records a game
// of semicolon-separated drawings of red, green and blue cubes from a bag.
package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// Drawing is one handful of cubes shown during a game. Colors absent from
// the drawing are zero.
type Drawing struct {
	Red   int
	Green int
	Blue  int
}

// Game is one input line: an ID and the drawings made during the game.
type Game struct {
	ID       int
	Drawings []Drawing
}

// parseDrawing parses "3 blue, 4 red" style segments.
func parseDrawing(s string) (Drawing, error) {
	var d Drawing
	for _, elem := range strings.Split(s, ", ") {
		count, color, ok := strings.Cut(elem, " ")
		if !ok {
			return Drawing{}, fmt.Errorf("malformed drawing element %q", elem)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return Drawing{}, fmt.Errorf("cube count in %q: %w", elem, err)
		}
		switch color {
		case "red":
			d.Red = n
		case "green":
			d.Green = n
		case "blue":
			d.Blue = n
		default:
			return Drawing{}, fmt.Errorf("unexpected color %q", color)
		}
	}
	return d, nil
}

// ParseGame parses one "Game N: ..." line.
func ParseGame(line string) (Game, error) {
	header, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("malformed game line %q", line)
	}
	_, idStr, ok := strings.Cut(header, " ")
	if !ok {
		return Game{}, fmt.Errorf("malformed game header %q", header)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Game{}, fmt.Errorf("game id in %q: %w", header, err)
	}
	parts := strings.Split(rest, "; ")
	drawings := make([]Drawing, 0, len(parts))
	for _, p := range parts {
		d, err := parseDrawing(p)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		drawings = append(drawings, d)
	}
	return Game{ID: id, Drawings: drawings}, nil
}

// ParseGames parses all non-empty input lines into games.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// Bag limits for part one.
const (
	maxRed   = 12
	maxGreen = 13
	maxBlue  = 14
)

// Possible reports whether every drawing of the game fits the part-one bag.
func (g Game) Possible() bool {
	for _, d := range g.Drawings {
		if d.Red > maxRed || d.Green > maxGreen || d.Blue > maxBlue {
			return false
		}
	}
	return true
}

// Power is the product of the per-color maxima across the game's drawings,
// i.e. the power of the minimal bag that makes the game possible.
func (g Game) Power() int {
	var r, gr, b int
	for _, d := range g.Drawings {
		if d.Red > r {
			r = d.Red
		}
		if d.Green > gr {
			gr = d.Green
		}
		if d.Blue > b {
			b = d.Blue
		}
	}
	return r * gr * b
}

// SumPossibleIDs sums the IDs of games possible with the part-one bag.
func SumPossibleIDs(games []Game) int {
	sum := 0
	for _, g := range games {
		if g.Possible() {
			sum += g.ID
		}
	}
	return sum
}

// SumPowers sums the minimal-bag powers of all games.
func SumPowers(games []Game) int {
	sum := 0
	for _, g := range games {
		sum += g.Power()
	}
	return sum
}
