package repository

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/bruinplan/planner-api/internal/models"
)

// courseRow mirrors one line of the scraped catalog export.
type courseRow struct {
	ID        string `csv:"id"`
	Title     string `csv:"title"`
	Day       string `csv:"day"`
	Time      string `csv:"time"`
	FinalDay  string `csv:"final_day"`
	FinalTime string `csv:"final_time"`
	FinalNote string `csv:"final_note"`
}

// discussionRow mirrors one discussion-section line, keyed by course id.
type discussionRow struct {
	CourseID   string `csv:"course_id"`
	Section    string `csv:"section"`
	Day        string `csv:"day"`
	Time       string `csv:"time"`
	Instructor string `csv:"instructor"`
}

// CatalogRepository serves course records from the CSV catalog export. The
// files are read once at construction; the catalog is immutable afterwards.
type CatalogRepository struct {
	courses []models.Course
	byID    map[string]models.Course
}

// NewCatalogRepository loads and assembles the catalog from the given files.
func NewCatalogRepository(coursesFile, discussionsFile string) (*CatalogRepository, error) {
	courseRows, err := readCSV[courseRow](coursesFile)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	discussionRows, err := readCSV[discussionRow](discussionsFile)
	if err != nil {
		return nil, fmt.Errorf("load discussions: %w", err)
	}

	discussions := make(map[string][]models.Discussion)
	for _, row := range discussionRows {
		discussions[row.CourseID] = append(discussions[row.CourseID], models.Discussion{
			Section:    row.Section,
			Day:        row.Day,
			Time:       row.Time,
			Instructor: row.Instructor,
		})
	}

	repo := &CatalogRepository{byID: make(map[string]models.Course, len(courseRows))}
	for _, row := range courseRows {
		course := models.Course{
			ID:          row.ID,
			Title:       row.Title,
			Day:         row.Day,
			Time:        row.Time,
			Discussions: discussions[row.ID],
		}
		if row.FinalDay != "" || row.FinalTime != "" {
			course.FinalExam = &models.FinalExam{
				Day:  row.FinalDay,
				Time: row.FinalTime,
				Note: row.FinalNote,
			}
		}
		repo.courses = append(repo.courses, course)
		repo.byID[course.ID] = course
	}

	sort.Slice(repo.courses, func(i, j int) bool {
		return repo.courses[i].ID < repo.courses[j].ID
	})

	return repo, nil
}

// List returns courses whose id matches the subject prefix; an empty prefix
// returns the whole catalog.
func (r *CatalogRepository) List(subjectPrefix string) []models.Course {
	if subjectPrefix == "" {
		out := make([]models.Course, len(r.courses))
		copy(out, r.courses)
		return out
	}

	prefix := strings.ToUpper(strings.TrimSpace(subjectPrefix))
	var out []models.Course
	for _, course := range r.courses {
		if strings.HasPrefix(strings.ToUpper(course.ID), prefix) {
			out = append(out, course)
		}
	}
	return out
}

// Find returns the course with the given id.
func (r *CatalogRepository) Find(id string) (models.Course, bool) {
	course, ok := r.byID[id]
	return course, ok
}

func readCSV[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}
