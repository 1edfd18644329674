package handler

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"       validate:"min=0"`
}

type orderItemRequest struct {
	ProductID string `json:"product"  validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type placeOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}
