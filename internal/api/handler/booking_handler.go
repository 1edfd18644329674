package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/api/metrics"
	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// BookingHandler handles the booking workflow.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings.
//
// @Summary      Request a booking with a sitter
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking request"
// @Success      201   {object}  ports.BookingView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		OwnerID:         userID,
		PetID:           req.PetID,
		SitterProfileID: req.SitterID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Message:         req.Message,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, view)
}

// ListMine handles GET /bookings/my — bookings the caller requested as owner.
//
// @Summary      List the caller's outgoing bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.BookingView
// @Failure      401  {object}  errorResponse
// @Router       /bookings/my [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, views)
}

// ListReceived handles GET /bookings/received — requests addressed to the caller as sitter.
//
// @Summary      List the caller's incoming booking requests
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.BookingView
// @Failure      401  {object}  errorResponse
// @Router       /bookings/received [get]
func (h *BookingHandler) ListReceived(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListReceived(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, views)
}

// Accept handles PATCH /bookings/:id/accept.
//
// @Summary      Accept a pending booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      200  {object}  ports.BookingView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /bookings/{id}/accept [patch]
func (h *BookingHandler) Accept(c echo.Context) error {
	return h.resolve(c, domain.BookingAccepted)
}

// Reject handles PATCH /bookings/:id/reject.
//
// @Summary      Reject a pending booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      200  {object}  ports.BookingView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /bookings/{id}/reject [patch]
func (h *BookingHandler) Reject(c echo.Context) error {
	return h.resolve(c, domain.BookingRejected)
}

func (h *BookingHandler) resolve(c echo.Context, status domain.BookingStatus) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.Resolve(c.Request().Context(), c.Param("id"), userID, status)
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(status)).Inc()

	return c.JSON(http.StatusOK, view)
}
