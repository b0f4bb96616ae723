package service

import (
	"context"

	"github.com/stemsi/campus-api/internal/model"
	"github.com/stemsi/campus-api/internal/validator"
)

// CampusStore is the campus persistence used by the services.
type CampusStore interface {
	List(ctx context.Context) ([]model.Campus, error)
	GetByID(ctx context.Context, id int) (*model.Campus, error)
	GetByIDs(ctx context.Context, ids []int) ([]model.Campus, error)
	Create(ctx context.Context, c *model.Campus) error
	Update(ctx context.Context, c *model.Campus) error
	Delete(ctx context.Context, id int) error
}

// CampusService handles campus business logic.
type CampusService struct {
	campuses CampusStore
	students StudentStore
}

// NewCampusService creates a new CampusService.
func NewCampusService(campuses CampusStore, students StudentStore) *CampusService {
	return &CampusService{campuses: campuses, students: students}
}

// List retrieves all campuses, each with its students.
func (s *CampusService) List(ctx context.Context) ([]model.CampusWithStudents, error) {
	campuses, err := s.campuses.List(ctx)
	if err != nil {
		return nil, backendErr("list campuses", err)
	}

	ids := make([]int, 0, len(campuses))
	for _, c := range campuses {
		ids = append(ids, c.ID)
	}

	students, err := s.students.ListByCampusIDs(ctx, ids)
	if err != nil {
		return nil, backendErr("list campus students", err)
	}

	byCampus := make(map[int][]model.Student, len(campuses))
	for _, st := range students {
		if st.CampusID != nil {
			byCampus[*st.CampusID] = append(byCampus[*st.CampusID], st)
		}
	}

	result := make([]model.CampusWithStudents, 0, len(campuses))
	for _, c := range campuses {
		enrolled := byCampus[c.ID]
		if enrolled == nil {
			enrolled = []model.Student{}
		}
		result = append(result, model.CampusWithStudents{Campus: c, Students: enrolled})
	}
	return result, nil
}

// GetByID retrieves a campus with its students. Returns
// repository.ErrNotFound when the campus does not exist.
func (s *CampusService) GetByID(ctx context.Context, id int) (*model.CampusWithStudents, error) {
	c, err := s.campuses.GetByID(ctx, id)
	if err != nil {
		return nil, backendErr("get campus", err)
	}

	students, err := s.students.ListByCampusIDs(ctx, []int{id})
	if err != nil {
		return nil, backendErr("list campus students", err)
	}
	if students == nil {
		students = []model.Student{}
	}

	return &model.CampusWithStudents{Campus: *c, Students: students}, nil
}

// Create validates and inserts a new campus. An empty description is
// stored as NULL and an empty image URL as the default image.
func (s *CampusService) Create(ctx context.Context, req model.CreateCampusRequest) (*model.Campus, error) {
	c := &model.Campus{
		Name:        req.Name,
		Address:     req.Address,
		Description: nullIfEmpty(req.Description),
		ImageURL:    imageOrDefault(&req.ImageURL),
	}

	if fields := validator.Struct(c); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.campuses.Create(ctx, c); err != nil {
		return nil, backendErr("create campus", err)
	}
	return c, nil
}

// Update applies the truthy fields of req to an existing campus.
func (s *CampusService) Update(ctx context.Context, id int, req model.UpdateCampusRequest) (*model.Campus, error) {
	c, err := s.campuses.GetByID(ctx, id)
	if err != nil {
		return nil, backendErr("get campus", err)
	}

	c.Name = orString(req.Name, c.Name)
	c.Address = orString(req.Address, c.Address)
	c.Description = orNullString(req.Description, c.Description)
	c.ImageURL = orNullString(req.ImageURL, c.ImageURL)

	if fields := validator.Struct(c); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.campuses.Update(ctx, c); err != nil {
		return nil, backendErr("update campus", err)
	}
	return c, nil
}

// Delete removes a campus. Its students remain with no campus assigned.
func (s *CampusService) Delete(ctx context.Context, id int) error {
	if err := s.campuses.Delete(ctx, id); err != nil {
		return backendErr("delete campus", err)
	}
	return nil
}
