package service

import (
	"context"
	"errors"

	"github.com/stemsi/campus-api/internal/model"
	"github.com/stemsi/campus-api/internal/repository"
	"github.com/stemsi/campus-api/internal/validator"
)

// StudentStore is the student persistence used by the services.
type StudentStore interface {
	List(ctx context.Context) ([]model.Student, error)
	ListByCampusIDs(ctx context.Context, campusIDs []int) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id int) error
}

// StudentService handles student business logic.
type StudentService struct {
	students StudentStore
	campuses CampusStore
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, campuses CampusStore) *StudentService {
	return &StudentService{students: students, campuses: campuses}
}

// List retrieves all students, each with its campus.
func (s *StudentService) List(ctx context.Context) ([]model.StudentWithCampus, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, backendErr("list students", err)
	}

	seen := make(map[int]bool)
	var ids []int
	for _, st := range students {
		if st.CampusID != nil && !seen[*st.CampusID] {
			seen[*st.CampusID] = true
			ids = append(ids, *st.CampusID)
		}
	}

	campuses, err := s.campuses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, backendErr("list student campuses", err)
	}
	byID := make(map[int]model.Campus, len(campuses))
	for _, c := range campuses {
		byID[c.ID] = c
	}

	result := make([]model.StudentWithCampus, 0, len(students))
	for _, st := range students {
		view := model.StudentWithCampus{Student: st}
		if st.CampusID != nil {
			if c, ok := byID[*st.CampusID]; ok {
				view.Campus = &c
			}
		}
		result = append(result, view)
	}
	return result, nil
}

// GetByID retrieves a student with its campus. Returns
// repository.ErrNotFound when the student does not exist.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.StudentWithCampus, error) {
	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, backendErr("get student", err)
	}

	view := &model.StudentWithCampus{Student: *st}
	if st.CampusID == nil {
		return view, nil
	}

	c, err := s.campuses.GetByID(ctx, *st.CampusID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// Dangling reference: report the student without a campus.
	case err != nil:
		return nil, backendErr("get student campus", err)
	default:
		view.Campus = c
	}
	return view, nil
}

// Create validates and inserts a new student. An absent or empty image URL
// is stored as the default image.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	st := &model.Student{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		ImageURL:  imageOrDefault(req.ImageURL),
		GPA:       req.GPA,
		CampusID:  req.CampusID,
	}

	if fields := validator.Struct(st); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.students.Create(ctx, st); err != nil {
		if errors.Is(err, repository.ErrCampusNotFound) {
			return nil, campusReferenceError()
		}
		return nil, backendErr("create student", err)
	}
	return st, nil
}

// Update applies the truthy fields of req to an existing student.
// A gpa or campusId of 0 is treated as absent.
func (s *StudentService) Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	st, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, backendErr("get student", err)
	}

	st.Firstname = orString(req.Firstname, st.Firstname)
	st.Lastname = orString(req.Lastname, st.Lastname)
	st.Email = orString(req.Email, st.Email)
	st.ImageURL = orNullString(req.ImageURL, st.ImageURL)
	st.GPA = orFloat(req.GPA, st.GPA)
	st.CampusID = orInt(req.CampusID, st.CampusID)

	if fields := validator.Struct(st); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.students.Update(ctx, st); err != nil {
		if errors.Is(err, repository.ErrCampusNotFound) {
			return nil, campusReferenceError()
		}
		return nil, backendErr("update student", err)
	}
	return st, nil
}

// Delete removes a student. Its campus is not affected.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return backendErr("delete student", err)
	}
	return nil
}
