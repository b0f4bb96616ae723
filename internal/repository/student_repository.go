package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/campus-api/internal/model"
)

var studentColumns = []string{"id", "firstname", "lastname", "email", "image_url", "gpa", "campus_id", "created_at", "updated_at"}

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row rowScanner, s *model.Student) error {
	return row.Scan(&s.ID, &s.Firstname, &s.Lastname, &s.Email, &s.ImageURL, &s.GPA, &s.CampusID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(studentColumns...).From("students").OrderBy("id ASC")
}

// List retrieves every student in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	query, args, err := r.selectStudents().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list students query: %w", err)
	}
	return r.query(ctx, query, args)
}

// ListByCampusIDs retrieves the students enrolled in any of the given campuses.
func (r *StudentRepository) ListByCampusIDs(ctx context.Context, campusIDs []int) ([]model.Student, error) {
	if len(campusIDs) == 0 {
		return []model.Student{}, nil
	}
	query, args, err := r.selectStudents().Where(squirrel.Eq{"campus_id": campusIDs}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list students by campus query: %w", err)
	}
	return r.query(ctx, query, args)
}

func (r *StudentRepository) query(ctx context.Context, query string, args []any) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get student query: %w", err)
	}

	s := &model.Student{}
	if err := scanStudent(r.pool.QueryRow(ctx, query, args...), s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get student %d: %w", id, err)
	}
	return s, nil
}

// insertStudent reads back gpa because NUMERIC(3,2) rounds the stored value.
func (r *StudentRepository) insertStudent(s *model.Student) squirrel.InsertBuilder {
	return r.sb.Insert("students").
		Columns("firstname", "lastname", "email", "image_url", "gpa", "campus_id").
		Values(s.Firstname, s.Lastname, s.Email, s.ImageURL, s.GPA, s.CampusID).
		Suffix("RETURNING id, gpa, created_at, updated_at")
}

func (r *StudentRepository) updateStudent(s *model.Student) squirrel.UpdateBuilder {
	return r.sb.Update("students").
		SetMap(map[string]any{
			"firstname":  s.Firstname,
			"lastname":   s.Lastname,
			"email":      s.Email,
			"image_url":  s.ImageURL,
			"gpa":        s.GPA,
			"campus_id":  s.CampusID,
			"updated_at": squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING gpa, updated_at")
}

// Create inserts a new student and fills in its generated fields and stored gpa.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	query, args, err := r.insertStudent(s).ToSql()
	if err != nil {
		return fmt.Errorf("build create student query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.GPA, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return ErrCampusNotFound
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of an existing student.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	query, args, err := r.updateStudent(s).ToSql()
	if err != nil {
		return fmt.Errorf("build update student query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.GPA, &s.UpdatedAt); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return ErrNotFound
		case isForeignKeyViolation(err):
			return ErrCampusNotFound
		}
		return fmt.Errorf("update student %d: %w", s.ID, err)
	}
	return nil
}

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	query, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete student query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete student %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
