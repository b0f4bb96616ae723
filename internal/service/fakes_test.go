package service

import (
	"context"
	"sort"
	"time"

	"github.com/stemsi/campus-api/internal/model"
	"github.com/stemsi/campus-api/internal/repository"
)

// memStore is an in-memory CampusStore and StudentStore. Deleting a campus
// clears the campus of its students, like ON DELETE SET NULL.
type memStore struct {
	campuses map[int]model.Campus
	students map[int]model.Student
	nextID   int
	writes   int
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		campuses: map[int]model.Campus{},
		students: map[int]model.Student{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

type campusStore struct{ *memStore }
type studentStore struct{ *memStore }

func (s campusStore) List(ctx context.Context) ([]model.Campus, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []model.Campus{}
	for _, c := range s.campuses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s campusStore) GetByID(ctx context.Context, id int) (*model.Campus, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	c, ok := s.campuses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s campusStore) GetByIDs(ctx context.Context, ids []int) ([]model.Campus, error) {
	out := []model.Campus{}
	for _, id := range ids {
		if c, ok := s.campuses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s campusStore) Create(ctx context.Context, c *model.Campus) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	c.ID = s.id()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.campuses[c.ID] = *c
	return nil
}

func (s campusStore) Update(ctx context.Context, c *model.Campus) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.campuses[c.ID]; !ok {
		return repository.ErrNotFound
	}
	s.writes++
	s.campuses[c.ID] = *c
	return nil
}

func (s campusStore) Delete(ctx context.Context, id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.campuses[id]; !ok {
		return repository.ErrNotFound
	}
	s.writes++
	delete(s.campuses, id)
	for sid, st := range s.students {
		if st.CampusID != nil && *st.CampusID == id {
			st.CampusID = nil
			s.students[sid] = st
		}
	}
	return nil
}

func (s studentStore) List(ctx context.Context) ([]model.Student, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []model.Student{}
	for _, st := range s.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s studentStore) ListByCampusIDs(ctx context.Context, ids []int) ([]model.Student, error) {
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Student{}
	for _, st := range all {
		if st.CampusID != nil && want[*st.CampusID] {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s studentStore) GetByID(ctx context.Context, id int) (*model.Student, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	st, ok := s.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &st, nil
}

func (s studentStore) checkCampus(st *model.Student) error {
	if st.CampusID == nil {
		return nil
	}
	if _, ok := s.campuses[*st.CampusID]; !ok {
		return repository.ErrCampusNotFound
	}
	return nil
}

func (s studentStore) Create(ctx context.Context, st *model.Student) error {
	if s.failWith != nil {
		return s.failWith
	}
	if err := s.checkCampus(st); err != nil {
		return err
	}
	s.writes++
	st.ID = s.id()
	s.students[st.ID] = *st
	return nil
}

func (s studentStore) Update(ctx context.Context, st *model.Student) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.students[st.ID]; !ok {
		return repository.ErrNotFound
	}
	if err := s.checkCampus(st); err != nil {
		return err
	}
	s.writes++
	s.students[st.ID] = *st
	return nil
}

func (s studentStore) Delete(ctx context.Context, id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, ok := s.students[id]; !ok {
		return repository.ErrNotFound
	}
	s.writes++
	delete(s.students, id)
	return nil
}

func newServices() (*memStore, *CampusService, *StudentService) {
	m := newMemStore()
	cs, ss := campusStore{m}, studentStore{m}
	return m, NewCampusService(cs, ss), NewStudentService(ss, cs)
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
