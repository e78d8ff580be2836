// File: internal/api/restaurant_response.go
package api

import (
	"time"

	"restaurant-reviews/internal/model"
)

// swagger:model api.RestaurantResponse
type RestaurantResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"Trattoria Roma"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRestaurantResponse 由 model.Restaurant 組裝回應
func NewRestaurantResponse(r *model.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
