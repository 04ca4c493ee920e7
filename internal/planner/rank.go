package planner

import (
	"sort"

	"github.com/bruinplan/planner-api/internal/models"
	"github.com/bruinplan/planner-api/internal/timeparse"
)

// Ranked pairs a valid candidate with its idle-time cost.
type Ranked struct {
	Candidate
	TotalGapHours float64
}

// Rank enumerates, filters, and sorts candidates ascending by total gap.
// Ties keep generation order, so identical input always yields identical
// output. An empty result means no combination survived filtering; an empty
// course list yields one trivial zero-cost candidate.
func Rank(courses []models.Course) []Ranked {
	var ranked []Ranked
	for _, candidate := range Enumerate(courses) {
		if !Valid(candidate) {
			continue
		}
		ranked = append(ranked, Ranked{
			Candidate:     candidate,
			TotalGapHours: TotalGap(candidate.Events),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalGapHours < ranked[j].TotalGapHours
	})
	return ranked
}

// Best returns the minimum-gap schedule, or ok=false when no candidate
// survives filtering.
func Best(courses []models.Course) (Ranked, bool) {
	ranked := Rank(courses)
	if len(ranked) == 0 {
		return Ranked{}, false
	}
	return ranked[0], true
}

// DroppedDayTokens reports unrecognized weekday tokens per course title
// across lectures, discussions, and finals. The parser drops these silently;
// surfacing them keeps bad catalog rows observable.
func DroppedDayTokens(courses []models.Course) map[string][]string {
	out := make(map[string][]string)
	record := func(title, day string) {
		if _, dropped := timeparse.ParseDayList(day); len(dropped) > 0 {
			out[title] = append(out[title], dropped...)
		}
	}
	for _, c := range courses {
		record(c.Title, c.Day)
		for _, d := range c.Discussions {
			record(c.Title, d.Day)
		}
		if c.FinalExam != nil {
			record(c.Title, c.FinalExam.Day)
		}
	}
	return out
}
