// File: internal/store/report.go
package store

import (
	"context"
	"fmt"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
)

// ListRestaurantReports 以單一查詢計算每間餐廳的平均評分與評價數。
// LEFT JOIN 讓沒有任何評價的餐廳也出現在結果中，其平均值為 nil。
func ListRestaurantReports(ctx context.Context, db database.DB) ([]model.RestaurantReport, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.name,
		        AVG(v.food_rating)::float8,
		        AVG(v.drinks_rating)::float8,
		        AVG(v.overall_rating)::float8,
		        COUNT(v.id)
		 FROM restaurants r
		 LEFT JOIN reviews v ON v.restaurant_id = r.id
		 GROUP BY r.id, r.name
		 ORDER BY r.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRestaurantReports: %w", translate(err))
	}
	defer rows.Close()

	var reports []model.RestaurantReport
	for rows.Next() {
		var r model.RestaurantReport
		if err := rows.Scan(
			&r.RestaurantID,
			&r.Name,
			&r.AvgFood,
			&r.AvgDrinks,
			&r.AvgOverall,
			&r.ReviewCount,
		); err != nil {
			return nil, fmt.Errorf("ListRestaurantReports: %w", translate(err))
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRestaurantReports: %w", translate(err))
	}
	return reports, nil
}
