// File: internal/api/review_response.go
package api

import (
	"time"

	"restaurant-reviews/internal/model"
)

// swagger:model api.ReviewResponse
type ReviewResponse struct {
	ID            int       `json:"id" example:"1"`
	RestaurantID  int       `json:"restaurant_id" example:"1"`
	UserID        int       `json:"user_id" example:"2"`
	FoodRating    int       `json:"food_rating" example:"5"`
	DrinksRating  int       `json:"drinks_rating" example:"4"`
	OverallRating int       `json:"overall_rating" example:"5"`
	Comment       *string   `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewReviewResponse 由 model.Review 組裝回應
func NewReviewResponse(v *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:            v.ID,
		RestaurantID:  v.RestaurantID,
		UserID:        v.UserID,
		FoodRating:    v.FoodRating,
		DrinksRating:  v.DrinksRating,
		OverallRating: v.OverallRating,
		Comment:       v.Comment,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
