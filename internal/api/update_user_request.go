// File: internal/api/update_user_request.go
package api

// UpdateUserRequest 部分更新，nil 欄位保持原值
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1" example:"alice"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password *string `json:"password" validate:"omitempty,min=1" example:"NewSecret456!"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin respondent" example:"respondent"`
}
