// File: internal/api/user_response.go
package api

import (
	"time"

	"restaurant-reviews/internal/model"
)

// UserResponse 回傳的使用者資訊，永遠不包含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	Role      model.Role `json:"role" example:"respondent"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewUserResponse 由 model.User 組裝回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
