package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/placementiq/placement-api/internal/api/metrics"
	"github.com/placementiq/placement-api/internal/core/ports"
)

// OfferHandler handles HTTP requests for offer records.
type OfferHandler struct {
	service ports.OfferService
}

func NewOfferHandler(service ports.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// Create handles POST /offers. The student is resolved before the company and
// a missing one of either is a 404.
//
// @Summary      Create an offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      offerRequest  true  "Offer details"
// @Success      200   {object}  offerResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /offers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	var req offerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("offer").Inc()
	return c.JSON(http.StatusOK, toOfferResponse(created))
}

// List handles GET /offers.
//
// @Summary      List offers
// @Tags         offers
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 1000)"
// @Param        offset  query     int  false  "Records to skip"
// @Success      200     {array}   offerResponse
// @Failure      422     {object}  ErrorResponse
// @Router       /offers [get]
func (h *OfferHandler) List(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(items, toOfferResponse))
}

// Get handles GET /offers/:id.
//
// @Summary      Get an offer by id
// @Tags         offers
// @Produce      json
// @Param        id   path      string  true  "Offer id"
// @Success      200  {object}  offerResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /offers/{id} [get]
func (h *OfferHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferResponse(item))
}

// Delete handles DELETE /offers/:id.
//
// @Summary      Delete an offer
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Offer id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /offers/{id} [delete]
func (h *OfferHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("offer").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Offer deleted successfully"})
}
