package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bruinplan/planner-api/internal/models"
	"github.com/bruinplan/planner-api/internal/planner"
	"github.com/bruinplan/planner-api/internal/repository"
)

func main() {
	coursesFile := flag.String("courses", "./res/courses.csv", "path to the course catalog CSV")
	discussionsFile := flag.String("discussions", "./res/discussions.csv", "path to the discussion sections CSV")
	pick := flag.String("pick", "", "comma-separated course IDs to schedule, e.g. \"COM SCI 31,MATH 33B\"")
	limit := flag.Int("limit", 3, "number of ranked schedules to print")
	flag.Parse()

	if *pick == "" {
		fmt.Fprintln(os.Stderr, "usage: planner-cli -pick \"COM SCI 31,MATH 33B\" [-courses file] [-discussions file]")
		os.Exit(2)
	}

	repo, err := repository.NewCatalogRepository(*coursesFile, *discussionsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	var courses []models.Course
	for _, id := range strings.Split(*pick, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		course, ok := repo.Find(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "course not found in catalog: %s\n", id)
			os.Exit(1)
		}
		courses = append(courses, course)
	}

	for droppedCourse, tokens := range planner.DroppedDayTokens(courses) {
		fmt.Fprintf(os.Stderr, "warning: %s has unrecognized day tokens: %s\n",
			droppedCourse, strings.Join(tokens, ", "))
	}

	ranked := planner.Rank(courses)
	if len(ranked) == 0 {
		// An all-conflicting selection is a normal outcome, not a failure.
		fmt.Println("No valid schedule found: lectures, discussions, or final exams conflict.")
		return
	}

	if *limit > len(ranked) {
		*limit = len(ranked)
	}
	for i, schedule := range ranked[:*limit] {
		fmt.Printf("=== Schedule %d (total gap: %.2f hours) ===\n", i+1, schedule.TotalGapHours)
		printSchedule(schedule)
		fmt.Println()
	}
}

// printSchedule groups a candidate's events per course: lecture first, then
// its discussion, then the final exam.
func printSchedule(s planner.Ranked) {
	byCourse := make(map[string][]planner.Event)
	var order []string
	for _, ev := range s.Events {
		if _, seen := byCourse[ev.Course]; !seen {
			order = append(order, ev.Course)
		}
		byCourse[ev.Course] = append(byCourse[ev.Course], ev)
	}
	finals := make(map[string]planner.Event, len(s.Finals))
	for _, ev := range s.Finals {
		finals[ev.Course] = ev
	}

	for _, course := range order {
		fmt.Printf("%s\n", course)
		for _, ev := range byCourse[course] {
			label := "Lecture"
			if ev.Kind == planner.KindDiscussion {
				label = "Discussion " + ev.Section
			}
			fmt.Printf("  %-16s %s %s\n", label, ev.Day, ev.TimeStr)
		}
		if fin, ok := finals[course]; ok {
			fmt.Printf("  %-16s %s %s\n", "Final", fin.Day, fin.TimeStr)
		}
	}
}
