package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stemsi/campus-api/internal/model"
)

func TestSelectCampusesByIDs(t *testing.T) {
	r := NewCampusRepository(nil)

	query, args, err := r.selectCampuses().Where(squirrel.Eq{"id": []int{4, 9}}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}

	want := "SELECT id, name, address, description, image_url, created_at, updated_at FROM campuses WHERE id IN ($1,$2) ORDER BY id ASC"
	if query != want {
		t.Errorf("query = %q\nwant    %q", query, want)
	}
	if len(args) != 2 || args[0] != 4 || args[1] != 9 {
		t.Errorf("args = %v", args)
	}
}

func TestSelectStudentsByCampus(t *testing.T) {
	r := NewStudentRepository(nil)

	query, args, err := r.selectStudents().Where(squirrel.Eq{"campus_id": []int{7}}).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.Contains(query, "FROM students WHERE campus_id IN ($1) ORDER BY id ASC") {
		t.Errorf("unexpected query %q", query)
	}
	if !strings.HasPrefix(query, "SELECT id, firstname, lastname, email, image_url, gpa, campus_id") {
		t.Errorf("unexpected column list %q", query)
	}
	if len(args) != 1 || args[0] != 7 {
		t.Errorf("args = %v", args)
	}
}

func TestStudentWritesReturnStoredGPA(t *testing.T) {
	r := NewStudentRepository(nil)
	gpa := 3.456
	s := &model.Student{ID: 3, Firstname: "A", Lastname: "B", Email: "a@b.test", GPA: &gpa}

	insert, _, err := r.insertStudent(s).ToSql()
	if err != nil {
		t.Fatalf("insert ToSql: %v", err)
	}
	if !strings.HasSuffix(insert, "RETURNING id, gpa, created_at, updated_at") {
		t.Errorf("insert = %q", insert)
	}

	update, args, err := r.updateStudent(s).ToSql()
	if err != nil {
		t.Fatalf("update ToSql: %v", err)
	}
	if !strings.HasSuffix(update, "WHERE id = $7 RETURNING gpa, updated_at") {
		t.Errorf("update = %q", update)
	}
	if len(args) != 7 || args[len(args)-1] != 3 {
		t.Errorf("args = %v", args)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	if !isForeignKeyViolation(fmt.Errorf("wrapped: %w", fk)) {
		t.Error("expected wrapped 23503 to be a foreign key violation")
	}
	if isForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation reported as foreign key violation")
	}
	if isForeignKeyViolation(errors.New("boom")) {
		t.Error("plain error reported as foreign key violation")
	}
}
