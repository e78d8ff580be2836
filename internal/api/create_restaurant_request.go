// File: internal/api/create_restaurant_request.go
package api

// swagger:model api.CreateRestaurantRequest
type CreateRestaurantRequest struct {
	Name        string  `json:"name" validate:"required" example:"Trattoria Roma"`
	Address     *string `json:"address" example:"10 Pushkin St."`
	Description *string `json:"description" example:"Cozy Italian place"`
}
