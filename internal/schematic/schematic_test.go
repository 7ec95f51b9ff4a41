package schematic

import (
	"reflect"
	"testing"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func values(nums []Number) []int {
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		out = append(out, n.Value)
	}
	return out
}

func TestNumbers(t *testing.T) {
	g := mustParse(t, example)
	want := []int{467, 114, 35, 633, 617, 58, 592, 755, 664, 598}
	if got := values(g.Numbers()); !reflect.DeepEqual(got, want) {
		t.Fatalf("Numbers = %v, want %v", got, want)
	}
}

func TestNumbers_RunEndsAtRowEdge(t *testing.T) {
	g := mustParse(t, "12.34\n56...\n7..89")
	want := []int{12, 34, 56, 7, 89}
	if got := values(g.Numbers()); !reflect.DeepEqual(got, want) {
		t.Fatalf("Numbers = %v, want %v", got, want)
	}
}

func TestNumbers_DoesNotJoinAcrossRows(t *testing.T) {
	// A run reaching the right edge must not merge with the next row.
	g := mustParse(t, "...123.\n.......")
	if got := values(g.Numbers()); !reflect.DeepEqual(got, []int{123}) {
		t.Fatalf("Numbers = %v, want [123]", got)
	}
}

func TestSumPartNumbers(t *testing.T) {
	if got := mustParse(t, example).SumPartNumbers(); got != 4361 {
		t.Fatalf("SumPartNumbers = %d, want 4361", got)
	}
}

func TestSumPartNumbers_EdgeSymbols(t *testing.T) {
	g := mustParse(t, `....................
..-52..52-..52..52..
..................-.`)
	if got := g.SumPartNumbers(); got != 156 {
		t.Fatalf("SumPartNumbers = %d, want 156", got)
	}
	if got := len(g.Numbers()); got != 4 {
		t.Fatalf("Numbers count = %d, want 4", got)
	}
}

func TestSumPartNumbers_DiagonalOnly(t *testing.T) {
	g := mustParse(t, `12.......*..
+.........34
.......-12..
..78........
..*....60...
78.........9
.5.....23..$
8...90*12...
............
2.2......12.
.*.........*
1.1..503+.56`)
	if got := g.SumPartNumbers(); got != 925 {
		t.Fatalf("SumPartNumbers = %d, want 925", got)
	}
}

func TestSumGearRatios(t *testing.T) {
	if got := mustParse(t, example).SumGearRatios(); got != 467835 {
		t.Fatalf("SumGearRatios = %d, want 467835", got)
	}
}

func TestSumGearRatios_StarWithOneNeighbourIsNotAGear(t *testing.T) {
	g := mustParse(t, "........\n.24..4..\n......*.")
	if got := len(g.Numbers()); got != 2 {
		t.Fatalf("Numbers count = %d, want 2", got)
	}
	if got := g.SumGearRatios(); got != 0 {
		t.Fatalf("SumGearRatios = %d, want 0", got)
	}
}

func TestParse_RaggedInput(t *testing.T) {
	if _, err := Parse("123\n45"); err == nil {
		t.Fatalf("expected error for ragged input")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse("\n\n"); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
