package models

// Course is one selected catalog entry fed into the planner. Day and Time
// keep the raw catalog strings; parsing happens inside the planner so dirty
// data degrades instead of failing the whole request.
type Course struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Day         string       `json:"day"`
	Time        string       `json:"time"`
	Discussions []Discussion `json:"discussions,omitempty"`
	FinalExam   *FinalExam   `json:"finalExam,omitempty"`
}

// Discussion is one mutually-exclusive section alternative tied to a lecture.
type Discussion struct {
	Section    string `json:"section"`
	Day        string `json:"day"`
	Time       string `json:"time"`
	Instructor string `json:"instructor,omitempty"`
}

// FinalExam is a course's end-of-term exam meeting, when the catalog lists one.
type FinalExam struct {
	Day  string `json:"day"`
	Time string `json:"time"`
	Note string `json:"note,omitempty"`
}

// DiscussionChoices is the branch count the course contributes to the
// candidate search space.
func (c Course) DiscussionChoices() int {
	if len(c.Discussions) == 0 {
		return 1
	}
	return len(c.Discussions)
}
