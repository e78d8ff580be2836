// File: internal/store/review.go
package store

import (
	"context"
	"fmt"
	"strings"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
)

// ReviewFilter 查詢評價的過濾條件，nil 表示不過濾該欄位。
type ReviewFilter struct {
	RestaurantID *int
	UserID       *int
}

func GetReviewByID(ctx context.Context, db database.DB, reviewID int) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`SELECT id, restaurant_id, user_id, food_rating, drinks_rating, overall_rating, comment, created_at, updated_at
		 FROM reviews WHERE id = $1`,
		reviewID,
	)
	v := &model.Review{}
	if err := row.Scan(
		&v.ID,
		&v.RestaurantID,
		&v.UserID,
		&v.FoodRating,
		&v.DrinksRating,
		&v.OverallRating,
		&v.Comment,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetReviewByID: %w", translate(err))
	}
	return v, nil
}

func ListReviews(ctx context.Context, db database.DB, filter ReviewFilter) ([]model.Review, error) {
	query := `SELECT id, restaurant_id, user_id, food_rating, drinks_rating, overall_rating, comment, created_at, updated_at
		 FROM reviews`
	var conds []string
	var args []any
	if filter.RestaurantID != nil {
		args = append(args, *filter.RestaurantID)
		conds = append(conds, fmt.Sprintf("restaurant_id = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListReviews: %w", translate(err))
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var v model.Review
		if err := rows.Scan(
			&v.ID,
			&v.RestaurantID,
			&v.UserID,
			&v.FoodRating,
			&v.DrinksRating,
			&v.OverallRating,
			&v.Comment,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListReviews: %w", translate(err))
		}
		reviews = append(reviews, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviews: %w", translate(err))
	}
	return reviews, nil
}

// CreateReview 新增評價。
// 同一位使用者對同一間餐廳重複評價時，唯一約束 unique_user_restaurant_review
// 使其回傳 ErrDuplicate；餐廳或使用者不存在時外鍵使其回傳 ErrNotFound。
func CreateReview(ctx context.Context, db database.DB, v *model.Review) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reviews (restaurant_id, user_id, food_rating, drinks_rating, overall_rating, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		v.RestaurantID,
		v.UserID,
		v.FoodRating,
		v.DrinksRating,
		v.OverallRating,
		v.Comment,
	)
	if err := row.Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateReview: %w", translate(err))
	}
	return v, nil
}
