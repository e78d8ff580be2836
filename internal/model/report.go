// File: internal/model/report.go
package model

// RestaurantReport 一間餐廳的評分統計。
// 無任何評價時三個平均值為 nil，與真正的平均 0 區別開來。
type RestaurantReport struct {
	RestaurantID int      `db:"restaurant_id" json:"restaurant_id"`
	Name         string   `db:"name" json:"name"`
	AvgFood      *float64 `db:"avg_food" json:"avg_food"`
	AvgDrinks    *float64 `db:"avg_drinks" json:"avg_drinks"`
	AvgOverall   *float64 `db:"avg_overall" json:"avg_overall"`
	ReviewCount  int      `db:"review_count" json:"review_count"`
}
