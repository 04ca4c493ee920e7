package planner

// Valid reports whether a candidate is free of conflicts: all lecture and
// discussion events pairwise, then all final-exam events pairwise. A
// candidate with no events of a given class trivially passes that check.
func Valid(c Candidate) bool {
	for i := 0; i < len(c.Events); i++ {
		for j := i + 1; j < len(c.Events); j++ {
			if Conflicts(c.Events[i], c.Events[j]) {
				return false
			}
		}
	}
	return !finalsConflict(c.Finals)
}
