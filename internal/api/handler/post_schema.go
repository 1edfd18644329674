package handler

type updatePostRequest struct {
	Content  string   `json:"content"   validate:"required,max=2000"`
	Tags     []string `json:"tags"`
	Location string   `json:"location"`
	PetType  string   `json:"pet_type"  validate:"omitempty,oneof=dog cat bird fish rabbit hamster other"`
	IsPublic *bool    `json:"is_public"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}
