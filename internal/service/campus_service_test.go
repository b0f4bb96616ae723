package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stemsi/campus-api/internal/model"
	"github.com/stemsi/campus-api/internal/repository"
)

func TestCampusCreateDefaults(t *testing.T) {
	_, campuses, _ := newServices()
	ctx := context.Background()

	c, err := campuses.Create(ctx, model.CreateCampusRequest{Name: "Main", Address: "1 Rd"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Error("expected generated id")
	}
	if c.ImageURL == nil || *c.ImageURL != model.DefaultImageURL {
		t.Errorf("ImageURL = %v, want default image", c.ImageURL)
	}
	if c.Description != nil {
		t.Errorf("Description = %q, want nil", *c.Description)
	}
}

func TestCampusCreateKeepsSuppliedFields(t *testing.T) {
	_, campuses, _ := newServices()

	c, err := campuses.Create(context.Background(), model.CreateCampusRequest{
		Name: "North", Address: "2 Ave", Description: "hill campus", ImageURL: "north.png",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if *c.Description != "hill campus" || *c.ImageURL != "north.png" {
		t.Errorf("unexpected campus %+v", c)
	}
}

func TestCampusCreateValidation(t *testing.T) {
	store, campuses, _ := newServices()

	_, err := campuses.Create(context.Background(), model.CreateCampusRequest{Name: "Main"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := ve.Fields["address"]; !ok {
		t.Errorf("fields = %v, want address", ve.Fields)
	}
	if store.writes != 0 {
		t.Errorf("writes = %d, want none", store.writes)
	}
}

func TestCampusUpdateFalsySkip(t *testing.T) {
	_, campuses, _ := newServices()
	ctx := context.Background()

	c, _ := campuses.Create(ctx, model.CreateCampusRequest{Name: "Main", Address: "1 Rd", Description: "old"})

	updated, err := campuses.Update(ctx, c.ID, model.UpdateCampusRequest{
		Name:        strPtr(""),
		Address:     strPtr("X"),
		Description: nil,
		ImageURL:    strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Main" {
		t.Errorf("Name = %q, want unchanged Main", updated.Name)
	}
	if updated.Address != "X" {
		t.Errorf("Address = %q, want X", updated.Address)
	}
	if updated.Description == nil || *updated.Description != "old" {
		t.Errorf("Description = %v, want unchanged", updated.Description)
	}
	if *updated.ImageURL != model.DefaultImageURL {
		t.Errorf("ImageURL = %q, want unchanged default", *updated.ImageURL)
	}

	got, _ := campuses.GetByID(ctx, c.ID)
	if got.Address != "X" {
		t.Errorf("stored Address = %q, want X", got.Address)
	}
}

func TestCampusUpdateNotFound(t *testing.T) {
	_, campuses, _ := newServices()

	_, err := campuses.Update(context.Background(), 99, model.UpdateCampusRequest{Name: strPtr("a"), Address: strPtr("b")})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCampusGetByIDEagerLoadsStudents(t *testing.T) {
	_, campuses, students := newServices()
	ctx := context.Background()

	c, _ := campuses.Create(ctx, model.CreateCampusRequest{Name: "Main", Address: "1 Rd"})
	other, _ := campuses.Create(ctx, model.CreateCampusRequest{Name: "Other", Address: "2 Rd"})

	empty, err := campuses.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if empty.Students == nil || len(empty.Students) != 0 {
		t.Fatalf("Students = %v, want empty non-nil list", empty.Students)
	}

	_, _ = students.Create(ctx, model.CreateStudentRequest{Firstname: "A", Lastname: "B", Email: "a@b.test", CampusID: intPtr(c.ID)})
	_, _ = students.Create(ctx, model.CreateStudentRequest{Firstname: "C", Lastname: "D", Email: "c@d.test", CampusID: intPtr(other.ID)})
	_, _ = students.Create(ctx, model.CreateStudentRequest{Firstname: "E", Lastname: "F", Email: "e@f.test"})

	got, err := campuses.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Students) != 1 || got.Students[0].Firstname != "A" {
		t.Errorf("Students = %+v, want only A", got.Students)
	}

	again, _ := campuses.GetByID(ctx, c.ID)
	if !reflect.DeepEqual(got, again) {
		t.Error("GetByID is not idempotent without intervening writes")
	}
}

func TestCampusListGroupsStudents(t *testing.T) {
	_, campuses, students := newServices()
	ctx := context.Background()

	a, _ := campuses.Create(ctx, model.CreateCampusRequest{Name: "A", Address: "1"})
	b, _ := campuses.Create(ctx, model.CreateCampusRequest{Name: "B", Address: "2"})
	_, _ = students.Create(ctx, model.CreateStudentRequest{Firstname: "S1", Lastname: "L", Email: "s1@x.test", CampusID: intPtr(a.ID)})
	_, _ = students.Create(ctx, model.CreateStudentRequest{Firstname: "S2", Lastname: "L", Email: "s2@x.test", CampusID: intPtr(a.ID)})

	list, err := campuses.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != a.ID || len(list[0].Students) != 2 {
		t.Errorf("campus A = %+v", list[0])
	}
	if list[1].ID != b.ID || list[1].Students == nil || len(list[1].Students) != 0 {
		t.Errorf("campus B = %+v", list[1])
	}
}

func TestCampusDeleteDetachesStudents(t *testing.T) {
	_, campuses, students := newServices()
	ctx := context.Background()

	c, _ := campuses.Create(ctx, model.CreateCampusRequest{Name: "Main", Address: "1 Rd"})
	st, _ := students.Create(ctx, model.CreateStudentRequest{Firstname: "A", Lastname: "B", Email: "a@b.test", CampusID: intPtr(c.ID)})

	if err := campuses.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := campuses.GetByID(ctx, c.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID after delete err = %v, want ErrNotFound", err)
	}
	if err := campuses.Delete(ctx, c.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}

	got, err := students.GetByID(ctx, st.ID)
	if err != nil {
		t.Fatalf("student GetByID: %v", err)
	}
	if got.CampusID != nil || got.Campus != nil {
		t.Errorf("student still references deleted campus: %+v", got)
	}
}

func TestCampusBackendFailure(t *testing.T) {
	store, campuses, _ := newServices()
	store.failWith = errors.New("connection reset")

	_, err := campuses.Create(context.Background(), model.CreateCampusRequest{Name: "Main", Address: "1 Rd"})
	var be *BackendError
	if !errors.As(err, &be) {
		t.Fatalf("err = %v, want BackendError", err)
	}
	if be.Op != "create campus" || !errors.Is(err, store.failWith) {
		t.Errorf("unexpected backend error %v", be)
	}
}
