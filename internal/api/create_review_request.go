// File: internal/api/create_review_request.go
package api

// CreateReviewRequest 三項評分以指標接收，
// 讓「欄位缺漏」與「送出 0 分」得到不同的驗證錯誤。
// swagger:model api.CreateReviewRequest
type CreateReviewRequest struct {
	RestaurantID  *int    `json:"restaurant_id" validate:"required,min=1" example:"1"`
	FoodRating    *int    `json:"food_rating" validate:"required,min=1,max=5" example:"5"`
	DrinksRating  *int    `json:"drinks_rating" validate:"required,min=1,max=5" example:"4"`
	OverallRating *int    `json:"overall_rating" validate:"required,min=1,max=5" example:"5"`
	Comment       *string `json:"comment" example:"Great pasta and wine!"`
}
