package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// DriveHandler handles HTTP requests for drive records.
type DriveHandler struct {
	service ports.DriveService
}

func NewDriveHandler(service ports.DriveService) *DriveHandler {
	return &DriveHandler{service: service}
}

// Create handles POST /drives. The referenced company must exist; its
// current name is copied onto the drive.
//
// @Summary      Create a drive
// @Tags         drives
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      driveRequest  true  "Drive details"
// @Success      200   {object}  driveResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /drives [post]
func (h *DriveHandler) Create(c echo.Context) error {
	var req driveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("drive").Inc()
	return c.JSON(http.StatusOK, toDriveResponse(created))
}

// List handles GET /drives.
//
// @Summary      List drives
// @Tags         drives
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 1000)"
// @Param        offset  query     int  false  "Records to skip"
// @Success      200     {array}   driveResponse
// @Failure      422     {object}  ErrorResponse
// @Router       /drives [get]
func (h *DriveHandler) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(items, toDriveResponse))
}

// Get handles GET /drives/:id.
//
// @Summary      Get a drive by id
// @Tags         drives
// @Produce      json
// @Param        id   path      string  true  "Drive id"
// @Success      200  {object}  driveResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /drives/{id} [get]
func (h *DriveHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDriveResponse(item))
}

// Update handles PUT /drives/:id. Every mutable field is replaced.
//
// @Summary      Replace a drive
// @Tags         drives
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Drive id"
// @Param        body  body      driveRequest  true  "Drive details"
// @Success      200   {object}  driveResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse  "drive or company not found"
// @Failure      422   {object}  ErrorResponse
// @Router       /drives/{id} [put]
func (h *DriveHandler) Update(c echo.Context) error {
	var req driveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesUpdatedTotal.WithLabelValues("drive").Inc()
	return c.JSON(http.StatusOK, toDriveResponse(updated))
}

// Delete handles DELETE /drives/:id.
//
// @Summary      Delete a drive
// @Tags         drives
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Drive id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /drives/{id} [delete]
func (h *DriveHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("drive").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Drive deleted successfully"})
}
