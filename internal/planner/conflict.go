package planner

// Conflicts reports whether two events overlap in time on a shared weekday.
// Events with an unparseable day or time never conflict. Intervals are
// half-open: a meeting ending at 10.0 does not conflict with one starting
// at 10.0.
func Conflicts(a, b Event) bool {
	if !a.TimeValid || !b.TimeValid {
		return false
	}
	if !sharesWeekday(a.days, b.days) {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

// finalsConflict checks final-exam events pairwise. Finals compare on exact
// day-string equality, not weekday-set intersection: an exam day names one
// concrete slot.
func finalsConflict(finals []Event) bool {
	valid := finals[:0:0]
	for _, f := range finals {
		if f.TimeValid {
			valid = append(valid, f)
		}
	}
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			if valid[i].Day == valid[j].Day &&
				valid[i].Start < valid[j].End && valid[j].Start < valid[i].End {
				return true
			}
		}
	}
	return false
}

func sharesWeekday(a, b []string) bool {
	for _, dayA := range a {
		for _, dayB := range b {
			if dayA == dayB {
				return true
			}
		}
	}
	return false
}
