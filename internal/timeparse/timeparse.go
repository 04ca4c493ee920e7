// Package timeparse converts the free-text day and time specifications found
// in scraped course catalogs into comparable numeric values.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	noDaySentinel  = "(No day)"
	noTimeSentinel = "(No time)"
	variesPrefix   = "Varies"
)

// Weekday codes follow the RFC 5545 BYDAY convention.
var weekdayCodes = map[string]string{
	"monday":    "MO",
	"tuesday":   "TU",
	"wednesday": "WE",
	"thursday":  "TH",
	"friday":    "FR",
	"saturday":  "SA",
	"sunday":    "SU",
}

var everyWeekday = []string{"MO", "TU", "WE", "TH", "FR"}

var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)?$`)

// TimeRange holds a meeting window as float hours (hour + minutes/60).
type TimeRange struct {
	Start float64
	End   float64
}

// ParseDayList maps a day specification to weekday codes. A nil code slice
// means the entry has no fixed meeting pattern ("(No day)", empty, or a
// "Varies: Consult Instructor" marker). Unrecognized tokens are dropped and
// returned separately so callers can report dirty catalog data.
func ParseDayList(dayStr string) (codes []string, dropped []string) {
	dayStr = strings.TrimSpace(dayStr)

	if dayStr == "" || dayStr == noDaySentinel || strings.HasPrefix(dayStr, variesPrefix) {
		return nil, nil
	}

	// Catalog rows spanning every weekday arrive as line-break separated
	// day groups, e.g. "Monday, Friday<br />Tuesday, Wednesday".
	if strings.Contains(dayStr, "<br") {
		out := make([]string, len(everyWeekday))
		copy(out, everyWeekday)
		return out, nil
	}

	for _, token := range strings.Split(dayStr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if code, ok := weekdayCodes[strings.ToLower(token)]; ok {
			codes = append(codes, code)
		} else {
			dropped = append(dropped, token)
		}
	}

	return codes, dropped
}

// ParseTimeRange parses "<start>-<end>" where each side looks like
// "H[:MM][am|pm]". It returns nil for empty input, the "(No time)" sentinel,
// or any shape it cannot parse. Scrapes occasionally duplicate the range
// ("1pm-1:50pm 1pm-1:50pm"); only the first whitespace token counts.
func ParseTimeRange(timeStr string) *TimeRange {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" || timeStr == noTimeSentinel {
		return nil
	}

	first := strings.Fields(timeStr)[0]
	parts := strings.SplitN(first, "-", 2)
	if len(parts) != 2 {
		return nil
	}

	start, ok := toFloatHours(parts[0])
	if !ok {
		return nil
	}
	end, ok := toFloatHours(parts[1])
	if !ok {
		return nil
	}

	return &TimeRange{Start: start, End: end}
}

func toFloatHours(s string) (float64, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, false
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil || minutes > 59 {
			return 0, false
		}
	}

	switch m[3] {
	case "pm":
		if hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	}

	return float64(hour) + float64(minutes)/60, true
}
