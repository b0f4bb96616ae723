package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/campus-api/internal/model"
)

// CampusService is the campus access layer used by CampusHandler.
type CampusService interface {
	List(ctx context.Context) ([]model.CampusWithStudents, error)
	GetByID(ctx context.Context, id int) (*model.CampusWithStudents, error)
	Create(ctx context.Context, req model.CreateCampusRequest) (*model.Campus, error)
	Update(ctx context.Context, id int, req model.UpdateCampusRequest) (*model.Campus, error)
	Delete(ctx context.Context, id int) error
}

// StudentService is the student access layer used by StudentHandler.
type StudentService interface {
	List(ctx context.Context) ([]model.StudentWithCampus, error)
	GetByID(ctx context.Context, id int) (*model.StudentWithCampus, error)
	Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error)
	Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id int) error
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func truthy(v *string) bool {
	return v != nil && *v != ""
}
