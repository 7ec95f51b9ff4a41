// Package scratch solves the scratchcard puzzle. Each card lists winning
// numbers and chosen numbers; matches score points in part one and spawn
// copies of following cards in part two.
package scratch

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is one "Card N: w w w | c c c" input line.
type Card struct {
	ID      int
	Winning map[int]struct{}
	Chosen  []int
}

func parseNums(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", f, err)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// ParseCard parses one card line.
func ParseCard(line string) (Card, error) {
	header, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("malformed card line %q", line)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return Card{}, fmt.Errorf("malformed card header %q", header)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("card id in %q: %w", header, err)
	}
	winSpec, chosenSpec, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing number separator", id)
	}
	winNums, err := parseNums(winSpec)
	if err != nil {
		return Card{}, fmt.Errorf("card %d winning: %w", id, err)
	}
	chosen, err := parseNums(chosenSpec)
	if err != nil {
		return Card{}, fmt.Errorf("card %d chosen: %w", id, err)
	}
	winning := make(map[int]struct{}, len(winNums))
	for _, n := range winNums {
		winning[n] = struct{}{}
	}
	return Card{ID: id, Winning: winning, Chosen: chosen}, nil
}

// ParseCards parses all non-empty lines into cards.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Matches counts chosen numbers present among the winning numbers.
func (c Card) Matches() int {
	count := 0
	for _, n := range c.Chosen {
		if _, ok := c.Winning[n]; ok {
			count++
		}
	}
	return count
}

// Points is the part-one score: 2^(matches-1), or 0 without matches.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// SumPoints is part one: total points across all cards.
func SumPoints(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum
}

// CountCards is part two: each card's matches add a copy of each of the next
// N cards, copies included; returns the total number of cards held.
func CountCards(cards []Card) int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
