package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/model"
	"github.com/stemsi/campus-api/internal/repository"
	"github.com/stemsi/campus-api/internal/response"
	"github.com/stemsi/campus-api/internal/validator"
)

// StudentHandler serves the /students routes.
type StudentHandler struct {
	studentService StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// ListStudents godoc
// GET /students
// Lists all students with their campus.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, students)
}

// GetStudent godoc
// GET /students/:id
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, student)
}

// CreateStudent godoc
// POST /students
// The body is validated only by the entity rules; failures go to the error middleware.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, student)
}

// DeleteStudent godoc
// DELETE /students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err).SetMeta(response.ErrStudentNotFound)
		return
	}
	response.Success(c, http.StatusOK, "Deleted a student!")
}

// UpdateStudent godoc
// PUT /students/:id
// Requires firstname, lastname and email; empty or zero fields keep their stored values.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}
	if !truthy(req.Firstname) || !truthy(req.Lastname) || !truthy(req.Email) {
		response.Fail(c, http.StatusBadRequest, response.ErrStudentFieldsRequired)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		if failValidation(c, err) {
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("student_id", id).Msg("Failed to update student")
		response.Fail(c, http.StatusInternalServerError, response.ErrStudentUpdateFailed)
		return
	}
	response.Success(c, http.StatusOK, student)
}
