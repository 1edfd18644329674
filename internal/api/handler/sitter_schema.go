package handler

type sitterProfileRequest struct {
	Bio        string   `json:"bio"`
	Services   []string `json:"services"     validate:"omitempty,dive,oneof=dog cat bird fish rabbit hamster other"`
	RatePerDay float64  `json:"rate_per_day" validate:"omitempty,gt=0"`
	Location   string   `json:"location"`
	ImageURL   string   `json:"image_url"`
}
