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

var campusColumns = []string{"id", "name", "address", "description", "image_url", "created_at", "updated_at"}

// CampusRepository handles campus data access.
type CampusRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewCampusRepository creates a new CampusRepository.
func NewCampusRepository(pool *pgxpool.Pool) *CampusRepository {
	return &CampusRepository{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCampus(row rowScanner, c *model.Campus) error {
	return row.Scan(&c.ID, &c.Name, &c.Address, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampusRepository) selectCampuses() squirrel.SelectBuilder {
	return r.sb.Select(campusColumns...).From("campuses").OrderBy("id ASC")
}

// List retrieves every campus in insertion order.
func (r *CampusRepository) List(ctx context.Context) ([]model.Campus, error) {
	query, args, err := r.selectCampuses().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list campuses query: %w", err)
	}
	return r.query(ctx, query, args)
}

// GetByIDs retrieves the campuses whose IDs are in ids. Missing IDs are skipped.
func (r *CampusRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Campus, error) {
	if len(ids) == 0 {
		return []model.Campus{}, nil
	}
	query, args, err := r.selectCampuses().Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get campuses query: %w", err)
	}
	return r.query(ctx, query, args)
}

func (r *CampusRepository) query(ctx context.Context, query string, args []any) ([]model.Campus, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query campuses: %w", err)
	}
	defer rows.Close()

	campuses := []model.Campus{}
	for rows.Next() {
		var c model.Campus
		if err := scanCampus(rows, &c); err != nil {
			return nil, fmt.Errorf("scan campus: %w", err)
		}
		campuses = append(campuses, c)
	}
	return campuses, rows.Err()
}

// GetByID retrieves a campus by ID.
func (r *CampusRepository) GetByID(ctx context.Context, id int) (*model.Campus, error) {
	query, args, err := r.sb.Select(campusColumns...).
		From("campuses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get campus query: %w", err)
	}

	c := &model.Campus{}
	if err := scanCampus(r.pool.QueryRow(ctx, query, args...), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get campus %d: %w", id, err)
	}
	return c, nil
}

// Create inserts a new campus and fills in its generated fields.
func (r *CampusRepository) Create(ctx context.Context, c *model.Campus) error {
	query, args, err := r.sb.Insert("campuses").
		Columns("name", "address", "description", "image_url").
		Values(c.Name, c.Address, c.Description, c.ImageURL).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create campus query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("create campus: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of an existing campus.
func (r *CampusRepository) Update(ctx context.Context, c *model.Campus) error {
	query, args, err := r.sb.Update("campuses").
		SetMap(map[string]any{
			"name":        c.Name,
			"address":     c.Address,
			"description": c.Description,
			"image_url":   c.ImageURL,
			"updated_at":  squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update campus query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update campus %d: %w", c.ID, err)
	}
	return nil
}

// Delete removes a campus by ID. Students of the campus keep their rows;
// the foreign key sets their campus_id to NULL.
func (r *CampusRepository) Delete(ctx context.Context, id int) error {
	query, args, err := r.sb.Delete("campuses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete campus query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete campus %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
