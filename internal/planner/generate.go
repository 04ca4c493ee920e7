package planner

import (
	"math"

	"github.com/bruinplan/planner-api/internal/models"
)

// Candidate is one full assignment of lecture + (optional) discussion per
// course, plus the accompanying final-exam events. Candidates are immutable
// once emitted.
type Candidate struct {
	Events []Event
	Finals []Event
}

// Enumerate produces every combination of discussion choices across the given
// courses. Lecture and final events are fixed per course; the branch set at
// each level is the course's discussion list, or a single no-discussion
// branch when the list is empty. The result size is the product of
// per-course discussion counts.
func Enumerate(courses []models.Course) []Candidate {
	return backtrack(courses, 0, nil, nil)
}

// CandidateCount returns the raw search-space size without enumerating it.
// The product saturates at math.MaxInt so oversized selections stay positive
// and comparable against a limit.
func CandidateCount(courses []models.Course) int {
	count := 1
	for _, c := range courses {
		choices := c.DiscussionChoices()
		if count > math.MaxInt/choices {
			return math.MaxInt
		}
		count *= choices
	}
	return count
}

func backtrack(courses []models.Course, i int, events, finals []Event) []Candidate {
	if i == len(courses) {
		return []Candidate{{Events: events, Finals: finals}}
	}

	course := courses[i]
	lecture := lectureEvent(course)
	final := finalEvent(course)

	var results []Candidate
	if len(course.Discussions) == 0 {
		next := appendEvents(events, lecture)
		results = append(results, backtrack(courses, i+1, next, appendEvents(finals, final))...)
		return results
	}

	for _, discussion := range course.Discussions {
		// Sibling branches share the prefix slices, so every descent
		// appends onto a fresh copy.
		next := appendEvents(events, lecture, discussionEvent(course, discussion))
		results = append(results, backtrack(courses, i+1, next, appendEvents(finals, final))...)
	}
	return results
}

func appendEvents(base []Event, extra ...Event) []Event {
	out := make([]Event, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
