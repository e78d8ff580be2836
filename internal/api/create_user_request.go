// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Role     string `json:"role" validate:"required,oneof=admin respondent" example:"respondent"`
}
