package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company records.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /companies.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company details"
// @Success      200   {object}  companyResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req companyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("company").Inc()
	return c.JSON(http.StatusOK, toCompanyResponse(created))
}

// List handles GET /companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 1000)"
// @Param        offset  query     int  false  "Records to skip"
// @Success      200     {array}   companyResponse
// @Failure      422     {object}  ErrorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(items, toCompanyResponse))
}

// Get handles GET /companies/:id.
//
// @Summary      Get a company by id
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  companyResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCompanyResponse(item))
}

// Update handles PUT /companies/:id. Every mutable field is replaced.
//
// @Summary      Replace a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Company id"
// @Param        body  body      companyRequest  true  "Company details"
// @Success      200   {object}  companyResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req companyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesUpdatedTotal.WithLabelValues("company").Inc()
	return c.JSON(http.StatusOK, toCompanyResponse(updated))
}

// Delete handles DELETE /companies/:id.
//
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("company").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Company deleted successfully"})
}
