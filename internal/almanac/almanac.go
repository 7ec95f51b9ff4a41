// Package almanac solves the seed-mapping puzzle. The almanac is a seeds
// line followed by mapping stages; each stage remaps a value through its
// ranges, values outside every range pass through unchanged, and the answer
// is the lowest final location.
package almanac

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Range remaps [SourceStart, SourceStart+Length) onto DestStart.
type Range struct {
	SourceStart uint64
	DestStart   uint64
	Length      uint64
}

// Stage is one mapping table. Ranges are kept sorted by source start so a
// lookup is a binary search for the last range starting at or before the
// input.
type Stage struct {
	ranges []Range
}

// NewStage sorts the ranges into lookup order.
func NewStage(ranges []Range) *Stage {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SourceStart < sorted[j].SourceStart })
	return &Stage{ranges: sorted}
}

// Transform maps one value through the stage.
func (s *Stage) Transform(v uint64) uint64 {
	// First range strictly after v; the candidate is the one before it.
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].SourceStart > v })
	if i == 0 {
		return v
	}
	r := s.ranges[i-1]
	if diff := v - r.SourceStart; diff < r.Length {
		return r.DestStart + diff
	}
	return v
}

// Almanac is the parsed input: seeds plus the ordered mapping stages.
type Almanac struct {
	Seeds  []uint64
	stages []*Stage
}

// Transform maps a seed through every stage in order.
func (a *Almanac) Transform(v uint64) uint64 {
	for _, s := range a.stages {
		v = s.Transform(v)
	}
	return v
}

func parseRange(line string) (Range, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Range{}, fmt.Errorf("range line %q: want 3 numbers", line)
	}
	nums := make([]uint64, 3)
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Range{}, fmt.Errorf("range number %q: %w", f, err)
		}
		nums[i] = n
	}
	return Range{DestStart: nums[0], SourceStart: nums[1], Length: nums[2]}, nil
}

// Parse reads the full almanac text: a "seeds:" line, then blank-line
// separated stages, each a "x-to-y map:" header followed by range lines.
func Parse(text string) (*Almanac, error) {
	blocks := strings.Split(strings.TrimSpace(text), "\n\n")
	if len(blocks) < 2 {
		return nil, fmt.Errorf("almanac: want seeds plus at least one map")
	}
	_, seedSpec, ok := strings.Cut(blocks[0], ":")
	if !ok {
		return nil, fmt.Errorf("almanac: malformed seeds line %q", blocks[0])
	}
	seedFields := strings.Fields(seedSpec)
	seeds := make([]uint64, 0, len(seedFields))
	for _, f := range seedFields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("almanac: seed %q: %w", f, err)
		}
		seeds = append(seeds, n)
	}

	stages := make([]*Stage, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 || !strings.HasSuffix(strings.TrimSpace(lines[0]), "map:") {
			return nil, fmt.Errorf("almanac: malformed map block %q", lines[0])
		}
		ranges := make([]Range, 0, len(lines)-1)
		for _, line := range lines[1:] {
			r, err := parseRange(line)
			if err != nil {
				return nil, fmt.Errorf("almanac: %w", err)
			}
			ranges = append(ranges, r)
		}
		stages = append(stages, NewStage(ranges))
	}
	return &Almanac{Seeds: seeds, stages: stages}, nil
}

// LowestLocation is part one: the minimum location over the individual
// seed numbers.
func (a *Almanac) LowestLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("almanac: no seeds")
	}
	best := a.Transform(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		if v := a.Transform(seed); v < best {
			best = v
		}
	}
	return best, nil
}

// LowestLocationRanges is part two: the seeds line is reread as
// (start, length) pairs and the minimum location is taken over every seed in
// every range. Ranges are fanned out across a bounded pool of workers, one
// range per task.
func (a *Almanac) LowestLocationRanges() (uint64, error) {
	if len(a.Seeds) == 0 || len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("almanac: seeds do not form (start, length) pairs")
	}

	type pair struct{ start, length uint64 }
	tasks := make(chan pair)
	results := make(chan uint64, len(a.Seeds)/2)

	workers := runtime.NumCPU()
	if n := len(a.Seeds) / 2; n < workers {
		workers = n
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range tasks {
				best := a.Transform(p.start)
				for seed := p.start + 1; seed < p.start+p.length; seed++ {
					if v := a.Transform(seed); v < best {
						best = v
					}
				}
				results <- best
			}
		}()
	}
	for i := 0; i < len(a.Seeds); i += 2 {
		tasks <- pair{start: a.Seeds[i], length: a.Seeds[i+1]}
	}
	close(tasks)
	wg.Wait()
	close(results)

	var best uint64
	first := true
	for v := range results {
		if first || v < best {
			best = v
			first = false
		}
	}
	if first {
		return 0, fmt.Errorf("almanac: no seed ranges")
	}
	return best, nil
}
