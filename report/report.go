// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"

	"github.com/danielhkuo/room-ballot/ballot"
)

// ScoreStats describes the average scores of a set of groups.
type ScoreStats struct {
	Mean   float64
	StdDev float64
}

// Summary aggregates one allocation pass.
type Summary struct {
	Groups         int
	PlacedGroups   int
	UnplacedGroups int

	PlacedPeople   uint
	UnplacedPeople uint

	Capacity  uint
	Occupancy uint

	// Choices[tier][rank] counts placements satisfied at that rank.
	Choices map[ballot.Tier][]int

	Placed   ScoreStats
	Unplaced ScoreStats
}

// Utilisation is the share of places filled, in percent.
func (s Summary) Utilisation() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return 100 * float64(s.Occupancy) / float64(s.Capacity)
}

// Summarize computes the summary of res over the allocated ballot b.
func Summarize(b *ballot.Ballot, res *ballot.Result) Summary {
	s := Summary{
		Groups:         len(res.Placements) + len(res.Unplaced),
		PlacedGroups:   len(res.Placements),
		UnplacedGroups: len(res.Unplaced),
		Capacity:       b.Capacity(),
		Choices:        make(map[ballot.Tier][]int),
	}

	placedScores := make([]float64, 0, len(res.Placements))
	for _, p := range res.Placements {
		s.PlacedPeople += p.Group.Size()
		placedScores = append(placedScores, p.Group.AverageScore())

		counts := s.Choices[p.Tier]
		for len(counts) <= p.Rank {
			counts = append(counts, 0)
		}
		counts[p.Rank]++
		s.Choices[p.Tier] = counts
	}

	unplacedScores := make([]float64, 0, len(res.Unplaced))
	for _, g := range res.Unplaced {
		s.UnplacedPeople += g.Size()
		unplacedScores = append(unplacedScores, g.AverageScore())
	}

	for _, h := range b.Accommodation {
		s.Occupancy += h.Occupancy()
	}

	s.Placed = scoreStats(placedScores)
	s.Unplaced = scoreStats(unplacedScores)
	return s
}

func scoreStats(xs []float64) ScoreStats {
	switch len(xs) {
	case 0:
		return ScoreStats{}
	case 1:
		return ScoreStats{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return ScoreStats{Mean: mean, StdDev: std}
}

// Print writes a household table followed by the summary.
func Print(w io.Writer, b *ballot.Ballot, s Summary) {
	fmt.Fprintf(w, "HOUSEHOLDS (%s):\n", humanize.Comma(int64(len(b.Accommodation))))
	for _, h := range b.Accommodation {
		fmt.Fprintf(w, "  %-20s %-16s %3d/%-3d %s\n",
			h.Name(), h.Building(), h.Occupancy(), h.Capacity(), h.Roster())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "PLACED: %s of %s groups (%s people)\n",
		humanize.Comma(int64(s.PlacedGroups)),
		humanize.Comma(int64(s.Groups)),
		humanize.Comma(int64(s.PlacedPeople)))
	printChoices(w, "household", s.Choices[ballot.TierHousehold])
	printChoices(w, "building", s.Choices[ballot.TierBuilding])
	if s.PlacedGroups > 0 {
		fmt.Fprintf(w, "  average score %.2f (sd %.2f)\n", s.Placed.Mean, s.Placed.StdDev)
	}

	fmt.Fprintf(w, "UNPLACED: %s groups (%s people)\n",
		humanize.Comma(int64(s.UnplacedGroups)),
		humanize.Comma(int64(s.UnplacedPeople)))
	if s.UnplacedGroups > 0 {
		fmt.Fprintf(w, "  average score %.2f (sd %.2f)\n", s.Unplaced.Mean, s.Unplaced.StdDev)
	}

	fmt.Fprintf(w, "CAPACITY: %s of %s places filled (%.1f%%)\n",
		humanize.Comma(int64(s.Occupancy)),
		humanize.Comma(int64(s.Capacity)),
		s.Utilisation())
}

func printChoices(w io.Writer, tier string, counts []int) {
	for rank, n := range counts {
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s %s choice: %s\n", humanize.Ordinal(rank+1), tier, humanize.Comma(int64(n)))
	}
}
