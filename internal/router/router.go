// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/handler/auth"
	"restaurant-reviews/internal/handler/restaurants"
	"restaurant-reviews/internal/handler/reviews"
	"restaurant-reviews/internal/handler/users"
	"restaurant-reviews/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB) {
	api := e.Group("/api/v1")

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// Users：列表、建立、更新、刪除僅限管理員；單筆查詢本人亦可
	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db), middleware.RequireAdmin)
	apiUsers.POST("", users.CreateUserHandler(db), middleware.RequireAdmin)
	apiUsers.GET("/:user_id", users.GetUserHandler(db), middleware.RequireAuth)
	apiUsers.PUT("/:user_id", users.UpdateUserHandler(db), middleware.RequireAdmin)
	apiUsers.DELETE("/:user_id", users.DeleteUserHandler(db), middleware.RequireAdmin)

	// Restaurants：讀取公開，寫入與報表僅限管理員
	apiRestaurants := api.Group("/restaurants")
	apiRestaurants.GET("", restaurants.ListRestaurantsHandler(db))
	apiRestaurants.GET("/report", restaurants.ReportHandler(db), middleware.RequireAdmin)
	apiRestaurants.GET("/:restaurant_id", restaurants.GetRestaurantHandler(db))
	apiRestaurants.POST("", restaurants.CreateRestaurantHandler(db), middleware.RequireAdmin)
	apiRestaurants.PUT("/:restaurant_id", restaurants.UpdateRestaurantHandler(db), middleware.RequireAdmin)
	apiRestaurants.DELETE("/:restaurant_id", restaurants.DeleteRestaurantHandler(db), middleware.RequireAdmin)

	// Reviews：讀取與建立都需要登入，範圍由授權評估器決定
	apiReviews := api.Group("/reviews", middleware.RequireAuth)
	apiReviews.GET("", reviews.ListReviewsHandler(db))
	apiReviews.POST("", reviews.CreateReviewHandler(db))
	apiReviews.GET("/:review_id", reviews.GetReviewHandler(db))
}
