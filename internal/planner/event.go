// Package planner enumerates conflict-free section combinations for a set of
// selected courses and ranks them by weekly idle time.
package planner

import (
	"github.com/bruinplan/planner-api/internal/models"
	"github.com/bruinplan/planner-api/internal/timeparse"
)

// Kind labels a scheduled meeting.
type Kind string

const (
	KindLecture    Kind = "lecture"
	KindDiscussion Kind = "discussion"
	KindFinal      Kind = "final"
)

// NoMeeting marks events whose day or time could not be parsed. Such events
// never participate in conflict checks or gap cost; they exist only so the
// caller can render the course.
const NoMeeting = "---"

// Event is one concrete meeting inside a candidate schedule.
type Event struct {
	Day       string
	TimeValid bool
	Start     float64
	End       float64
	Kind      Kind
	Course    string
	Section   string
	TimeStr   string

	days []string
}

// NewEvent builds an event from raw catalog strings, degrading to an invalid
// placeholder when the day or time cannot be parsed.
func NewEvent(kind Kind, course, section, day, timeStr string) Event {
	tr := timeparse.ParseTimeRange(timeStr)
	days, _ := timeparse.ParseDayList(day)

	ev := Event{
		Day:     NoMeeting,
		Kind:    kind,
		Course:  course,
		Section: section,
		TimeStr: NoMeeting,
	}
	if tr == nil || len(days) == 0 {
		return ev
	}

	ev.Day = day
	ev.TimeValid = true
	ev.Start = tr.Start
	ev.End = tr.End
	ev.TimeStr = timeStr
	ev.days = days
	return ev
}

// Weekdays returns the parsed weekday codes the event occurs on.
func (e Event) Weekdays() []string {
	return e.days
}

func lectureEvent(c models.Course) Event {
	return NewEvent(KindLecture, c.Title, "", c.Day, c.Time)
}

func discussionEvent(c models.Course, d models.Discussion) Event {
	return NewEvent(KindDiscussion, c.Title, d.Section, d.Day, d.Time)
}

func finalEvent(c models.Course) Event {
	if c.FinalExam == nil {
		return NewEvent(KindFinal, c.Title, "", "", "")
	}
	return NewEvent(KindFinal, c.Title, "", c.FinalExam.Day, c.FinalExam.Time)
}
