// Package calibrate recovers calibration values from scrambled document
// lines. Each line encodes a two-digit value: the first and the last digit
// appearing in the line, where a "digit" may be either an ASCII digit
// character or a spelled-out lowercase word "one" through "nine".
package calibrate

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// The forward pattern matches the earliest-starting token left to right.
// The backward pattern matches over the rune-reversed line, so its word
// alternatives are spelled backwards; finding the first token there locates
// the last token of the original line. Alternation order is significant:
// matching is leftmost-first, so at a shared start position the earlier
// alternative wins (e.g. "oneight" yields "one" forward and "thgie" backward).
var (
	forwardRe  = regexp.MustCompile(`one|two|three|four|five|six|seven|eight|nine|[0-9]`)
	backwardRe = regexp.MustCompile(`eno|owt|eerht|ruof|evif|xis|neves|thgie|enin|[0-9]`)
)

// tokenValues maps every token either pattern can produce to its digit value.
var tokenValues = map[string]int{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4,
	"5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
	"eno": 1, "owt": 2, "eerht": 3, "ruof": 4, "evif": 5,
	"xis": 6, "neves": 7, "thgie": 8, "enin": 9,
}

// tokenValue resolves a matched token to its digit. The patterns only emit
// tokens present in tokenValues, so a miss is a programming fault rather
// than an input condition.
func tokenValue(token string) int {
	v, ok := tokenValues[token]
	if !ok {
		panic(fmt.Sprintf("calibrate: matched token %q has no value", token))
	}
	return v
}

// reverseRunes returns s with its runes in reverse order.
func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ProcessLine returns the calibration value of a single line: ten times the
// first token's digit plus the last token's digit. The two ends are located
// by independent scans — forward over the line, and forward over the
// reversed line with reversed word patterns — so a single occurrence serves
// as both first and last, and overlapping words ("twone") resolve per scan
// direction. A line with no token in either scan is worth 0.
func ProcessLine(line string) int {
	first := forwardRe.FindString(line)
	if first == "" {
		return 0
	}
	last := backwardRe.FindString(reverseRunes(line))
	if last == "" {
		return 0
	}
	return 10*tokenValue(first) + tokenValue(last)
}

// SumLines sums the calibration values of all lines, trimming surrounding
// whitespace from each line first. An empty slice sums to 0.
func SumLines(lines []string) int {
	sum := 0
	for _, line := range lines {
		sum += ProcessLine(strings.TrimSpace(line))
	}
	return sum
}

// SumReader streams newline-delimited lines from r and sums their
// calibration values. It is equivalent to reading all lines up front and
// calling SumLines.
func SumReader(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	sum := 0
	for scanner.Scan() {
		sum += ProcessLine(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read lines: %w", err)
	}
	return sum, nil
}
