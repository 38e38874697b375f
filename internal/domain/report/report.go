// Package report folds roster records into the performance report.
package report

import (
	"math"

	"github.com/wekesa/attache/internal/domain/model"
)

// Running-extreme seeds for the fold. The lowest seed is only correct
// for a non-empty roster; Build resets it to zero afterwards when no
// records were seen.
const (
	highestSeed = 0
	lowestSeed  = 100
)

// OverallStats summarizes the whole population.
type OverallStats struct {
	TotalAttachees int `json:"total_attachees"`
	AverageScore   int `json:"average_score"`
	HighestScore   int `json:"highest_score"`
	LowestScore    int `json:"lowest_score"`
}

// Report maps every recognized division to its summaries (divisions
// with zero members yield an empty list, never an absent key) plus the
// overall statistics.
type Report struct {
	Divisions map[model.Division][]model.Summary `json:"divisions"`
	Overall   OverallStats                       `json:"overall_stats"`
}

// Build produces the report in a single pass over the records. The
// highest/lowest scores are running extremes over the performance
// scores encountered while grouping; no sorting is involved.
func Build(records []*model.Attachee) Report {
	divisions := make(map[model.Division][]model.Summary, len(model.Divisions()))
	for _, d := range model.Divisions() {
		divisions[d] = []model.Summary{}
	}

	highest := highestSeed
	lowest := lowestSeed
	sum := 0

	for _, a := range records {
		s := a.Summary()
		divisions[s.Division] = append(divisions[s.Division], s)

		sum += s.PerformanceScore
		if s.PerformanceScore > highest {
			highest = s.PerformanceScore
		}
		if s.PerformanceScore < lowest {
			lowest = s.PerformanceScore
		}
	}

	overall := OverallStats{
		TotalAttachees: len(records),
		HighestScore:   highest,
		LowestScore:    lowest,
	}
	if len(records) == 0 {
		// The running-minimum seed would otherwise report 100 for an
		// empty roster.
		overall.LowestScore = 0
	} else {
		overall.AverageScore = int(math.Round(float64(sum) / float64(len(records))))
	}

	return Report{Divisions: divisions, Overall: overall}
}
