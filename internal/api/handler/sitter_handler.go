package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// SitterHandler handles the public sitter directory and the caller's own listing.
type SitterHandler struct {
	service ports.SitterService
}

func NewSitterHandler(service ports.SitterService) *SitterHandler {
	return &SitterHandler{service: service}
}

// List handles GET /sitters — the public directory.
//
// @Summary      Browse the sitter directory
// @Tags         sitters
// @Produce      json
// @Param        pet_type  query     string  false  "Filter by service pet type"
// @Param        location  query     string  false  "Case-insensitive location substring"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  ports.ListSittersResult
// @Failure      400       {object}  errorResponse
// @Router       /sitters [get]
func (h *SitterHandler) List(c echo.Context) error {
	filter := ports.ListSittersFilter{
		PetType:  domain.PetType(c.QueryParam("pet_type")),
		Location: c.QueryParam("location"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}

	result, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Get handles GET /sitters/:id.
//
// @Summary      Get a sitter listing by profile id
// @Tags         sitters
// @Produce      json
// @Param        id  path  string  true  "Sitter profile id"
// @Success      200  {object}  ports.SitterView
// @Failure      404  {object}  errorResponse
// @Router       /sitters/{id} [get]
func (h *SitterHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// GetMine handles GET /sitters/my.
//
// @Summary      Get the caller's sitter listing
// @Tags         sitters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SitterView
// @Failure      404  {object}  errorResponse
// @Router       /sitters/my [get]
func (h *SitterHandler) GetMine(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// UpsertMine handles PUT /sitters/my — create-if-absent, keyed by the caller.
//
// @Summary      Create or update the caller's sitter listing
// @Tags         sitters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sitterProfileRequest  true  "Listing fields"
// @Success      200   {object}  ports.SitterView
// @Failure      400   {object}  errorResponse
// @Router       /sitters/my [put]
func (h *SitterHandler) UpsertMine(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req sitterProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	services := make([]domain.PetType, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, domain.PetType(s))
	}

	view, err := h.service.UpsertMine(c.Request().Context(), userID, ports.SitterProfileInput{
		Bio:        req.Bio,
		Services:   services,
		RatePerDay: req.RatePerDay,
		Location:   req.Location,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// queryInt parses an integer query parameter, falling back to def when
// missing or malformed.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
