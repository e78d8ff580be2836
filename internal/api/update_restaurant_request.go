// File: internal/api/update_restaurant_request.go
package api

// UpdateRestaurantRequest 部分更新，nil 欄位保持原值
// swagger:model api.UpdateRestaurantRequest
type UpdateRestaurantRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1" example:"Trattoria Roma"`
	Address     *string `json:"address" example:"10 Pushkin St."`
	Description *string `json:"description" example:"Cozy Italian place"`
}
