package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// ShopHandler handles the pet-supplies catalogue and orders.
type ShopHandler struct {
	service ports.ShopService
}

func NewShopHandler(service ports.ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// ListProducts handles GET /products.
//
// @Summary      List the product catalogue
// @Tags         shop
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ShopHandler) ListProducts(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /products — admin only.
//
// @Summary      Add a catalogue product
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ShopHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.CreateProduct(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id — admin only.
//
// @Summary      Update a catalogue product
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ShopHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id — admin only.
//
// @Summary      Remove a catalogue product
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ShopHandler) DeleteProduct(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

// PlaceOrder handles POST /orders.
//
// @Summary      Place an order
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order lines"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /orders [post]
func (h *ShopHandler) PlaceOrder(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), userID, items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// ListMyOrders handles GET /orders/my.
//
// @Summary      List the caller's orders
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /orders/my [get]
func (h *ShopHandler) ListMyOrders(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func toProductInput(r productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Stock:       r.Stock,
	}
}
