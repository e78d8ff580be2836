// File: internal/model/review.go
package model

import "time"

// Review 一位使用者對一間餐廳的評價。
// 三項評分皆為 1 到 5 的整數，(user_id, restaurant_id) 在資料庫層面唯一。
type Review struct {
	ID            int       `db:"id" json:"id"`
	RestaurantID  int       `db:"restaurant_id" json:"restaurant_id"`
	UserID        int       `db:"user_id" json:"user_id"`
	FoodRating    int       `db:"food_rating" json:"food_rating"`
	DrinksRating  int       `db:"drinks_rating" json:"drinks_rating"`
	OverallRating int       `db:"overall_rating" json:"overall_rating"`
	Comment       *string   `db:"comment" json:"comment"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
