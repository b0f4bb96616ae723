package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tables lists the tables EnsureSchema manages, parents first.
var Tables = []string{"campuses", "students"}

// schemaStatements create the tables if they are missing. They never alter
// an existing table.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS campuses (
		id          SERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		address     VARCHAR(255) NOT NULL,
		description TEXT,
		image_url   VARCHAR(255) DEFAULT 'default-image.jpg',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id         SERIAL PRIMARY KEY,
		firstname  VARCHAR(255) NOT NULL,
		lastname   VARCHAR(255) NOT NULL,
		email      VARCHAR(255) NOT NULL CHECK (email <> ''),
		image_url  VARCHAR(255) DEFAULT 'default-image.jpg',
		gpa        NUMERIC(3, 2) CHECK (gpa >= 0 AND gpa <= 4),
		campus_id  INTEGER REFERENCES campuses (id) ON DELETE SET NULL ON UPDATE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS students_campus_id_idx ON students (campus_id)`,
}

// EnsureSchema creates the campuses and students tables when absent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
