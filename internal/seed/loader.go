package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/model"
)

// CampusService is the part of the campus access layer the loader needs.
type CampusService interface {
	List(ctx context.Context) ([]model.CampusWithStudents, error)
	Create(ctx context.Context, req model.CreateCampusRequest) (*model.Campus, error)
}

// StudentService is the part of the student access layer the loader needs.
type StudentService interface {
	Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error)
}

// Summary reports the outcome of a load.
type Summary struct {
	CampusesCreated int
	StudentsCreated int
	Failed          []RowError
}

// Loader writes a parsed workbook through the services, so every row gets
// the same validation and defaults as an API request.
type Loader struct {
	campuses CampusService
	students StudentService
	log      zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader(campuses CampusService, students StudentService, log zerolog.Logger) *Loader {
	return &Loader{
		campuses: campuses,
		students: students,
		log:      log.With().Str("component", "seed").Logger(),
	}
}

// Load creates the workbook's campuses, then its students. Student campus
// names resolve against campuses already stored and those created by this
// load. Failing rows are collected and do not stop the load; only failing
// to list existing campuses aborts it.
func (l *Loader) Load(ctx context.Context, wb *Workbook) (*Summary, error) {
	existing, err := l.campuses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campuses: %w", err)
	}

	byName := make(map[string]int, len(existing)+len(wb.Campuses))
	for _, c := range existing {
		key := campusKey(c.Name)
		if _, dup := byName[key]; !dup {
			byName[key] = c.ID
		}
	}

	sum := &Summary{Failed: append([]RowError(nil), wb.Skipped...)}

	for _, row := range wb.Campuses {
		campus, err := l.campuses.Create(ctx, row.Request)
		if err != nil {
			sum.Failed = append(sum.Failed, RowError{Sheet: CampusSheet, Row: row.Row, Err: err})
			continue
		}
		sum.CampusesCreated++
		byName[campusKey(campus.Name)] = campus.ID
		l.log.Debug().Int("campus_id", campus.ID).Str("name", campus.Name).Msg("Seeded campus")
	}

	for _, row := range wb.Students {
		req := row.Request
		if row.Campus != "" {
			id, ok := byName[campusKey(row.Campus)]
			if !ok {
				sum.Failed = append(sum.Failed, RowError{Sheet: StudentSheet, Row: row.Row, Err: fmt.Errorf("unknown campus %q", row.Campus)})
				continue
			}
			req.CampusID = &id
		}

		student, err := l.students.Create(ctx, req)
		if err != nil {
			sum.Failed = append(sum.Failed, RowError{Sheet: StudentSheet, Row: row.Row, Err: err})
			continue
		}
		sum.StudentsCreated++
		l.log.Debug().Int("student_id", student.ID).Str("email", student.Email).Msg("Seeded student")
	}

	return sum, nil
}

func campusKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
