// Package race solves the boat race puzzle: for each race, count the button
// hold times that beat the distance record, given that a boat held for h
// milliseconds travels h*(time-h) millimetres.
package race

import (
	"fmt"
	"strconv"
	"strings"
)

// Race is one time/distance column of the input table.
type Race struct {
	Time     uint64
	Distance uint64
}

func tableLines(text string) (string, string, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return "", "", fmt.Errorf("race: want a time line and a distance line")
	}
	return lines[0], lines[1], nil
}

func lineValues(line, label string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], label) {
		return nil, fmt.Errorf("race: malformed %s line %q", strings.ToLower(label), line)
	}
	return fields[1:], nil
}

// Parse reads the two-line table as separate races.
func Parse(text string) ([]Race, error) {
	timeLine, distLine, err := tableLines(text)
	if err != nil {
		return nil, err
	}
	times, err := lineValues(timeLine, "Time")
	if err != nil {
		return nil, err
	}
	dists, err := lineValues(distLine, "Distance")
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("race: %d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		t, err := strconv.ParseUint(times[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("race: time %q: %w", times[i], err)
		}
		d, err := strconv.ParseUint(dists[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("race: distance %q: %w", dists[i], err)
		}
		races[i] = Race{Time: t, Distance: d}
	}
	return races, nil
}

// ParseKerned rereads the table with the whitespace kerning removed: the
// digits of each line concatenate into a single race.
func ParseKerned(text string) (Race, error) {
	timeLine, distLine, err := tableLines(text)
	if err != nil {
		return Race{}, err
	}
	times, err := lineValues(timeLine, "Time")
	if err != nil {
		return Race{}, err
	}
	dists, err := lineValues(distLine, "Distance")
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.ParseUint(strings.Join(times, ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("race: kerned time: %w", err)
	}
	d, err := strconv.ParseUint(strings.Join(dists, ""), 10, 64)
	if err != nil {
		return Race{}, fmt.Errorf("race: kerned distance: %w", err)
	}
	return Race{Time: t, Distance: d}, nil
}

// WaysToBeat counts the hold times that beat the record.
func (r Race) WaysToBeat() uint64 {
	var count uint64
	for hold := uint64(1); hold < r.Time; hold++ {
		if hold*(r.Time-hold) > r.Distance {
			count++
		}
	}
	return count
}

// MarginProduct is part one: the product of the per-race win counts.
func MarginProduct(races []Race) uint64 {
	product := uint64(1)
	for _, r := range races {
		product *= r.WaysToBeat()
	}
	return product
}
