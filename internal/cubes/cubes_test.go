package cubes

import (
	"reflect"
	"strings"
	"testing"
)

const exampleGames = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func parseExample(t *testing.T) []Game {
	t.Helper()
	games, err := ParseGames(strings.Split(exampleGames, "\n"))
	if err != nil {
		t.Fatalf("ParseGames: %v", err)
	}
	return games
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}
	want := Game{ID: 1, Drawings: []Drawing{
		{Blue: 3, Red: 4},
		{Red: 1, Green: 2, Blue: 6},
		{Green: 2},
	}}
	if !reflect.DeepEqual(g, want) {
		t.Fatalf("ParseGame = %+v, want %+v", g, want)
	}
}

func TestParseGame_Malformed(t *testing.T) {
	for _, line := range []string{
		"Game 1",
		"Game: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 teal",
		"Game 1: blue",
	} {
		if _, err := ParseGame(line); err == nil {
			t.Fatalf("expected error for %q", line)
		}
	}
}

func TestSumPossibleIDs(t *testing.T) {
	if got := SumPossibleIDs(parseExample(t)); got != 8 {
		t.Fatalf("SumPossibleIDs = %d, want 8", got)
	}
}

func TestSumPowers(t *testing.T) {
	if got := SumPowers(parseExample(t)); got != 2286 {
		t.Fatalf("SumPowers = %d, want 2286", got)
	}
}

func TestPower(t *testing.T) {
	games := parseExample(t)
	if got := games[0].Power(); got != 48 {
		t.Fatalf("game 1 power = %d, want 48", got)
	}
}
