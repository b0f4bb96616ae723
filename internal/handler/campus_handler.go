package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/campus-api/internal/model"
	"github.com/stemsi/campus-api/internal/repository"
	"github.com/stemsi/campus-api/internal/response"
	"github.com/stemsi/campus-api/internal/service"
	"github.com/stemsi/campus-api/internal/validator"
)

// CampusHandler serves the /campuses routes.
type CampusHandler struct {
	campusService CampusService
}

// NewCampusHandler creates a new CampusHandler.
func NewCampusHandler(campusService CampusService) *CampusHandler {
	return &CampusHandler{campusService: campusService}
}

// ListCampuses godoc
// GET /campuses
// Lists all campuses with their students.
func (h *CampusHandler) ListCampuses(c *gin.Context) {
	campuses, err := h.campusService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, campuses)
}

// GetCampus godoc
// GET /campuses/:id
func (h *CampusHandler) GetCampus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	campus, err := h.campusService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCampusNotFound)
			return
		}
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, campus)
}

// CreateCampus godoc
// POST /campuses
// Requires name and address.
func (h *CampusHandler) CreateCampus(c *gin.Context) {
	var req model.CreateCampusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}
	if req.Name == "" || req.Address == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrCampusFieldsRequired)
		return
	}

	campus, err := h.campusService.Create(c.Request.Context(), req)
	if err != nil {
		if failValidation(c, err) {
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to create campus")
		response.Fail(c, http.StatusInternalServerError, response.ErrCampusCreateFailed)
		return
	}
	response.Success(c, http.StatusCreated, campus)
}

// UpdateCampus godoc
// PUT /campuses/:id
// Requires name and address; other empty fields keep their stored values.
func (h *CampusHandler) UpdateCampus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateCampusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}
	if !truthy(req.Name) || !truthy(req.Address) {
		response.Fail(c, http.StatusBadRequest, response.ErrCampusFieldsRequired)
		return
	}

	campus, err := h.campusService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCampusNotFound)
			return
		}
		if failValidation(c, err) {
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("campus_id", id).Msg("Failed to update campus")
		response.Fail(c, http.StatusInternalServerError, response.ErrCampusUpdateFailed)
		return
	}

	zerolog.Ctx(c.Request.Context()).Debug().Int("campus_id", id).Msg("Updated campus")
	response.Success(c, http.StatusOK, campus)
}

// DeleteCampus godoc
// DELETE /campuses/:id
// Students of the campus are kept without a campus.
func (h *CampusHandler) DeleteCampus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.campusService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrCampusNotFound)
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("campus_id", id).Msg("Failed to delete campus")
		response.Fail(c, http.StatusInternalServerError, response.ErrCampusDeleteFailed)
		return
	}

	response.Message(c, http.StatusOK, "Campus deleted successfully!")
}

// failValidation answers 400 when err is a validation error.
func failValidation(c *gin.Context, err error) bool {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, ve.Fields)
	return true
}
