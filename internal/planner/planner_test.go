package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bruinplan/planner-api/internal/models"
)

func TestConflictsSharedDayOverlap(t *testing.T) {
	a := NewEvent(KindLecture, "A", "", "Tuesday, Thursday", "11am-12:50pm")
	b := NewEvent(KindLecture, "B", "", "Thursday", "12pm-1pm")
	assert.True(t, Conflicts(a, b))
	assert.True(t, Conflicts(b, a))
}

func TestConflictsDisjointDays(t *testing.T) {
	a := NewEvent(KindLecture, "A", "", "Tuesday, Thursday", "11am-12:50pm")
	b := NewEvent(KindLecture, "B", "", "Wednesday", "11am-1:50pm")
	assert.False(t, Conflicts(a, b))
}

func TestConflictsHalfOpenBoundary(t *testing.T) {
	a := NewEvent(KindLecture, "A", "", "Monday", "9am-10am")
	b := NewEvent(KindLecture, "B", "", "Monday", "10am-11am")
	assert.False(t, Conflicts(a, b), "end == start must not conflict")
}

func TestConflictsInvalidEventNeverConflicts(t *testing.T) {
	a := NewEvent(KindLecture, "A", "", "Varies: Consult Instructor", "(No time)")
	b := NewEvent(KindLecture, "B", "", "Monday", "9am-10am")
	assert.False(t, a.TimeValid)
	assert.False(t, Conflicts(a, b))
	assert.False(t, Conflicts(b, a))
}

func TestEnumerateBranchProduct(t *testing.T) {
	courses := []models.Course{
		{Title: "CS 31", Day: "Monday, Wednesday", Time: "10am-11:50am", Discussions: []models.Discussion{
			{Section: "1A", Day: "Friday", Time: "9am-9:50am"},
			{Section: "1B", Day: "Friday", Time: "10am-10:50am"},
			{Section: "1C", Day: "Friday", Time: "11am-11:50am"},
		}},
		{Title: "MATH 33B", Day: "Tuesday, Thursday", Time: "2pm-3:50pm", Discussions: []models.Discussion{
			{Section: "2A", Day: "Thursday", Time: "9am-9:50am"},
			{Section: "2B", Day: "Thursday", Time: "10am-10:50am"},
		}},
		{Title: "PHILOS 7", Day: "Friday", Time: "1pm-3:50pm"},
	}

	candidates := Enumerate(courses)
	assert.Len(t, candidates, 6)
	assert.Equal(t, 6, CandidateCount(courses))

	for _, c := range candidates {
		lectures := 0
		for _, ev := range c.Events {
			if ev.Kind == KindLecture {
				lectures++
			}
		}
		assert.Equal(t, 3, lectures, "exactly one lecture per course")
		assert.Len(t, c.Finals, 3, "one final slot per course, placeholder or not")
	}
}

func TestCandidateCountSaturatesInsteadOfOverflowing(t *testing.T) {
	// 12 courses x 40 discussions is 40^12 ~ 1.7e19, past what an int64
	// product can hold. The count must stay positive so limit checks hold.
	discussions := make([]models.Discussion, 40)
	for i := range discussions {
		discussions[i] = models.Discussion{Section: "1A", Day: "Friday", Time: "9am-9:50am"}
	}
	courses := make([]models.Course, 12)
	for i := range courses {
		courses[i] = models.Course{Title: "A", Day: "Monday", Time: "9am-10am", Discussions: discussions}
	}

	count := CandidateCount(courses)
	assert.Greater(t, count, 0)
	assert.Equal(t, math.MaxInt, count)
}

func TestEnumerateBranchesDoNotShareSlices(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Monday", Time: "9am-10am", Discussions: []models.Discussion{
			{Section: "1A", Day: "Tuesday", Time: "9am-10am"},
			{Section: "1B", Day: "Wednesday", Time: "9am-10am"},
		}},
	}
	candidates := Enumerate(courses)
	require.Len(t, candidates, 2)
	assert.Equal(t, "1A", candidates[0].Events[1].Section)
	assert.Equal(t, "1B", candidates[1].Events[1].Section)
}

func TestRankDisjointLecturesKeepEveryCandidate(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Tuesday, Thursday", Time: "11am-12:50pm"},
		{Title: "B", Day: "Wednesday", Time: "11am-1:50pm"},
	}
	ranked := Rank(courses)
	assert.Len(t, ranked, 1)
}

func TestRankOverlappingLecturesYieldNothing(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Monday", Time: "9am-10:30am"},
		{Title: "B", Day: "Monday", Time: "10am-11am"},
	}
	assert.Empty(t, Rank(courses))

	_, ok := Best(courses)
	assert.False(t, ok)
}

func TestRankEmptyInputYieldsTrivialCandidate(t *testing.T) {
	ranked := Rank(nil)
	require.Len(t, ranked, 1)
	assert.Empty(t, ranked[0].Events)
	assert.Zero(t, ranked[0].TotalGapHours)
}

func TestTotalGap(t *testing.T) {
	oneHourApart := []Event{
		NewEvent(KindLecture, "A", "", "Monday", "9am-10am"),
		NewEvent(KindLecture, "B", "", "Monday", "11am-12pm"),
	}
	assert.InDelta(t, 1.0, TotalGap(oneHourApart), 1e-9)

	backToBack := []Event{
		NewEvent(KindLecture, "A", "", "Monday", "9am-10am"),
		NewEvent(KindLecture, "B", "", "Monday", "10am-11am"),
	}
	assert.Zero(t, TotalGap(backToBack))
}

func TestTotalGapSkipsInvalidEvents(t *testing.T) {
	events := []Event{
		NewEvent(KindLecture, "A", "", "Monday", "9am-10am"),
		NewEvent(KindLecture, "B", "", "(No day)", "(No time)"),
		NewEvent(KindLecture, "C", "", "Monday", "11am-12pm"),
	}
	assert.InDelta(t, 1.0, TotalGap(events), 1e-9)
}

func TestTotalGapCountsEachWeekdaySeparately(t *testing.T) {
	events := []Event{
		NewEvent(KindLecture, "A", "", "Tuesday, Thursday", "9am-10am"),
		NewEvent(KindLecture, "B", "", "Tuesday, Thursday", "11am-12pm"),
	}
	assert.InDelta(t, 2.0, TotalGap(events), 1e-9)
}

func TestFinalsConflictUsesExactDayEquality(t *testing.T) {
	// Lecture-style day-set intersection would flag these; finals must not.
	spanning := NewEvent(KindFinal, "A", "", "Tuesday, Thursday", "8am-11am")
	single := NewEvent(KindFinal, "B", "", "Tuesday", "8am-11am")
	assert.True(t, finalsConflict([]Event{spanning, NewEvent(KindFinal, "C", "", "Tuesday, Thursday", "9am-10am")}))
	assert.False(t, finalsConflict([]Event{spanning, single}))
}

func TestFinalsConflictInvalidatesCandidate(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Monday", Time: "9am-10am",
			FinalExam: &models.FinalExam{Day: "Saturday", Time: "8am-11am"}},
		{Title: "B", Day: "Tuesday", Time: "9am-10am",
			FinalExam: &models.FinalExam{Day: "Saturday", Time: "10am-1pm"}},
	}
	assert.Empty(t, Rank(courses))
}

func TestRankEndToEnd(t *testing.T) {
	courses := []models.Course{
		{Title: "CS 31", Day: "Monday, Wednesday", Time: "10am-11:50am", Discussions: []models.Discussion{
			{Section: "1A", Day: "Friday", Time: "9am-9:50am"},
			{Section: "1B", Day: "Friday", Time: "10am-10:50am"},
			{Section: "1C", Day: "Friday", Time: "11am-11:50am"},
			{Section: "1D", Day: "Friday", Time: "12pm-12:50pm"},
		}},
		{Title: "MATH 33B", Day: "Tuesday, Thursday", Time: "2pm-3:50pm", Discussions: []models.Discussion{
			{Section: "2A", Day: "Thursday", Time: "9am-9:50am"},
			{Section: "2B", Day: "Thursday", Time: "12pm-12:50pm"},
		}},
		{Title: "PHILOS 7", Day: "Friday", Time: "1pm-3:50pm",
			FinalExam: &models.FinalExam{Day: "Saturday", Time: "8am-11am"}},
	}

	require.Equal(t, 8, CandidateCount(courses))
	ranked := Rank(courses)
	require.NotEmpty(t, ranked)
	assert.LessOrEqual(t, len(ranked), 8)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[0].TotalGapHours, ranked[i].TotalGapHours)
		assert.LessOrEqual(t, ranked[i-1].TotalGapHours, ranked[i].TotalGapHours)
	}

	best, ok := Best(courses)
	require.True(t, ok)
	assert.Equal(t, ranked[0].TotalGapHours, best.TotalGapHours)
}

func TestRankIsDeterministic(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Monday", Time: "9am-10am", Discussions: []models.Discussion{
			{Section: "1A", Day: "Tuesday", Time: "9am-10am"},
			{Section: "1B", Day: "Wednesday", Time: "9am-10am"},
		}},
		{Title: "B", Day: "Thursday", Time: "9am-10am"},
	}

	first := Rank(courses)
	second := Rank(courses)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].TotalGapHours, second[i].TotalGapHours)
		assert.Equal(t, first[i].Events, second[i].Events)
	}
}

func TestUnparseableLectureStillOccupiesSlot(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Varies: Consult Instructor", Time: "(No time)"},
		{Title: "B", Day: "Monday", Time: "9am-10am"},
	}
	ranked := Rank(courses)
	require.Len(t, ranked, 1)
	assert.Len(t, ranked[0].Events, 2)
	assert.False(t, ranked[0].Events[0].TimeValid)
	assert.Equal(t, NoMeeting, ranked[0].Events[0].Day)
}

func TestDroppedDayTokens(t *testing.T) {
	courses := []models.Course{
		{Title: "A", Day: "Monday, Funday", Time: "9am-10am", Discussions: []models.Discussion{
			{Section: "1A", Day: "Caturday", Time: "9am-10am"},
		}},
		{Title: "B", Day: "Tuesday", Time: "9am-10am"},
	}
	dropped := DroppedDayTokens(courses)
	assert.Equal(t, []string{"Funday", "Caturday"}, dropped["A"])
	assert.NotContains(t, dropped, "B")
}
