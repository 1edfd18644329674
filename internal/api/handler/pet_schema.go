package handler

// messageResponse is the envelope for delete confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

type petRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Type        string  `json:"type"        validate:"required,oneof=dog cat bird fish rabbit hamster other"`
	Breed       string  `json:"breed"`
	Age         int     `json:"age"         validate:"omitempty,min=0"`
	WeightKg    float64 `json:"weight_kg"   validate:"omitempty,gt=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}
