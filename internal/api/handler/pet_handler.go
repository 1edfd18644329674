package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// PetHandler handles owner-scoped pet CRUD.
type PetHandler struct {
	service ports.PetService
}

func NewPetHandler(service ports.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// Create handles POST /pets.
//
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      petRequest  true  "Pet details"
// @Success      201   {object}  domain.Pet
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req petRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.service.Create(c.Request().Context(), userID, toPetInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, pet)
}

// ListMine handles GET /pets/my.
//
// @Summary      List the caller's pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Pet
// @Failure      401  {object}  errorResponse
// @Router       /pets/my [get]
func (h *PetHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	pets, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pets)
}

// Update handles PUT /pets/:id.
//
// @Summary      Update one of the caller's pets
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Pet id"
// @Param        body  body      petRequest  true  "Pet details"
// @Success      200   {object}  domain.Pet
// @Failure      404   {object}  errorResponse
// @Router       /pets/{id} [put]
func (h *PetHandler) Update(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req petRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toPetInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pet)
}

// Delete handles DELETE /pets/:id.
//
// @Summary      Delete one of the caller's pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pet id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "pet deleted"})
}

func toPetInput(r petRequest) ports.PetInput {
	return ports.PetInput{
		Name:        r.Name,
		Type:        domain.PetType(r.Type),
		Breed:       r.Breed,
		Age:         r.Age,
		WeightKg:    r.WeightKg,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}
