package planner

import "sort"

// TotalGap sums the idle hours between consecutive same-day events. Events
// covering several weekdays contribute to each of those days. Events with an
// unparseable day or time are skipped entirely.
func TotalGap(events []Event) float64 {
	byDay := make(map[string][]Event)
	for _, ev := range events {
		if !ev.TimeValid || len(ev.days) == 0 {
			continue
		}
		for _, day := range ev.days {
			byDay[day] = append(byDay[day], ev)
		}
	}

	var total float64
	for _, dayEvents := range byDay {
		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].Start < dayEvents[j].Start
		})
		for i := 1; i < len(dayEvents); i++ {
			gap := dayEvents[i].Start - dayEvents[i-1].End
			if gap > 0 {
				total += gap
			}
		}
	}
	return total
}
