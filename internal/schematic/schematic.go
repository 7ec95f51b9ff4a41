// Package schematic solves the engine schematic puzzle: a rectangular
// character grid containing numbers, symbols and '.' filler. A number counts
// as a part number when any cell of its 8-neighbourhood holds a symbol, and
// a '*' adjacent to exactly two part numbers is a gear.
package schematic

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is one horizontal digit run in the grid.
type Number struct {
	Value int
	Row   int
	Col   int
	Len   int
}

// Grid is the parsed schematic. All rows have equal width.
type Grid struct {
	rows   []string
	width  int
	height int
}

// Parse builds a grid from input text. Empty trailing lines are dropped;
// remaining lines must share one width.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("schematic: empty input")
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("schematic: line %d width %d, want %d", i+1, len(r), width)
		}
	}
	return &Grid{rows: rows, width: width, height: len(rows)}, nil
}

func (g *Grid) at(row, col int) byte {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return '.'
	}
	return g.rows[row][col]
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

// Numbers extracts every digit run in row-major order.
func (g *Grid) Numbers() []Number {
	var nums []Number
	for y, row := range g.rows {
		x := 0
		for x < g.width {
			if !isDigit(row[x]) {
				x++
				continue
			}
			start := x
			for x < g.width && isDigit(row[x]) {
				x++
			}
			v, err := strconv.Atoi(row[start:x])
			if err != nil {
				// Digit runs always parse; guarded for completeness.
				panic(fmt.Sprintf("schematic: digit run %q: %v", row[start:x], err))
			}
			nums = append(nums, Number{Value: v, Row: y, Col: start, Len: x - start})
		}
	}
	return nums
}

// hasAdjacentSymbol reports whether any cell bordering the number run holds
// a symbol, including diagonals.
func (g *Grid) hasAdjacentSymbol(n Number) bool {
	for y := n.Row - 1; y <= n.Row+1; y++ {
		for x := n.Col - 1; x <= n.Col+n.Len; x++ {
			if y == n.Row && x >= n.Col && x < n.Col+n.Len {
				continue
			}
			if isSymbol(g.at(y, x)) {
				return true
			}
		}
	}
	return false
}

// PartNumbers returns the numbers that touch at least one symbol.
func (g *Grid) PartNumbers() []Number {
	var parts []Number
	for _, n := range g.Numbers() {
		if g.hasAdjacentSymbol(n) {
			parts = append(parts, n)
		}
	}
	return parts
}

// SumPartNumbers is part one: the sum of all part number values.
func (g *Grid) SumPartNumbers() int {
	sum := 0
	for _, n := range g.PartNumbers() {
		sum += n.Value
	}
	return sum
}

type cell struct{ row, col int }

// SumGearRatios is part two: for every '*' adjacent to exactly two distinct
// part numbers, add the product of the pair.
func (g *Grid) SumGearRatios() int {
	// Index each part number by the cells it occupies so a '*' neighbourhood
	// lookup lands on the run, not just its first digit.
	lookup := make(map[cell]int)
	parts := g.PartNumbers()
	for i, n := range parts {
		for dx := 0; dx < n.Len; dx++ {
			lookup[cell{n.Row, n.Col + dx}] = i
		}
	}

	sum := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.at(y, x) != '*' {
				continue
			}
			adjacent := make(map[int]struct{})
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					if i, ok := lookup[cell{y + dy, x + dx}]; ok {
						adjacent[i] = struct{}{}
					}
				}
			}
			if len(adjacent) == 2 {
				ratio := 1
				for i := range adjacent {
					ratio *= parts[i].Value
				}
				sum += ratio
			}
		}
	}
	return sum
}
