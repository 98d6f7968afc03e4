package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Create handles POST /students.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studentRequest  true  "Student details"
// @Success      200   {object}  studentResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("student").Inc()
	return c.JSON(http.StatusOK, toStudentResponse(created))
}

// List handles GET /students.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 1000)"
// @Param        offset  query     int  false  "Records to skip"
// @Success      200     {array}   studentResponse
// @Failure      422     {object}  ErrorResponse
// @Router       /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(items, toStudentResponse))
}

// Get handles GET /students/:id.
//
// @Summary      Get a student by id
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  studentResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStudentResponse(item))
}

// Update handles PUT /students/:id. Every mutable field is replaced.
//
// @Summary      Replace a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Student id"
// @Param        body  body      studentRequest  true  "Student details"
// @Success      200   {object}  studentResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesUpdatedTotal.WithLabelValues("student").Inc()
	return c.JSON(http.StatusOK, toStudentResponse(updated))
}

// Delete handles DELETE /students/:id.
//
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("student").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Student deleted successfully"})
}
