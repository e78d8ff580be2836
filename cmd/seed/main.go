// File: cmd/seed/main.go
// 以示範資料初始化資料庫：一位管理員、兩位 respondent、三間餐廳與三則評價。
// 資料庫已有使用者時跳過；-reset 先回滾所有 migration 再重建乾淨資料。
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/service"
	"restaurant-reviews/internal/store"

	"github.com/joho/godotenv"
)

func ptr[T any](v T) *T { return &v }

func seedUser(ctx context.Context, db database.DB, username, email, password string, role model.Role) (*model.User, error) {
	hash, err := service.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return store.CreateUser(ctx, db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}

func run(reset bool) error {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found – relying on env vars")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	if reset {
		log.Print("rolling back all migrations before reseeding")
		if err := database.RollbackAll(dbURL); err != nil {
			return fmt.Errorf("Rollback 執行失敗: %v", err)
		}
	}

	if err := database.RunMigrations(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	ctx := context.Background()
	db, err := database.NewPgxPool(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	existing, err := store.ListUsers(ctx, db)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Print("database already contains users, skipping seed")
		return nil
	}

	if _, err := seedUser(ctx, db, "admin", "admin@example.com", "admin123", model.RoleAdmin); err != nil {
		return err
	}
	user1, err := seedUser(ctx, db, "user1", "user1@example.com", "user123", model.RoleRespondent)
	if err != nil {
		return err
	}
	user2, err := seedUser(ctx, db, "user2", "user2@example.com", "user123", model.RoleRespondent)
	if err != nil {
		return err
	}

	r1, err := store.CreateRestaurant(ctx, db, &model.Restaurant{
		Name:        "Trattoria Roma",
		Address:     ptr("10 Pushkin St."),
		Description: ptr("Cozy Italian place"),
	})
	if err != nil {
		return err
	}
	r2, err := store.CreateRestaurant(ctx, db, &model.Restaurant{
		Name:        "Sakura Garden",
		Address:     ptr("25 Lenin St."),
		Description: ptr("Japanese kitchen with an authentic interior"),
	})
	if err != nil {
		return err
	}
	if _, err := store.CreateRestaurant(ctx, db, &model.Restaurant{
		Name:        "Old Traditions",
		Address:     ptr("5 Gagarin St."),
		Description: ptr("Traditional home-style dishes"),
	}); err != nil {
		return err
	}

	seedReviews := []model.Review{
		{RestaurantID: r1.ID, UserID: user1.ID, FoodRating: 5, DrinksRating: 4, OverallRating: 5, Comment: ptr("Great pasta and wine!")},
		{RestaurantID: r2.ID, UserID: user1.ID, FoodRating: 4, DrinksRating: 5, OverallRating: 4, Comment: ptr("Fresh sushi, recommended!")},
		{RestaurantID: r1.ID, UserID: user2.ID, FoodRating: 3, DrinksRating: 4, OverallRating: 3, Comment: ptr("Decent pizza but a long wait")},
	}
	for i := range seedReviews {
		if _, err := store.CreateReview(ctx, db, &seedReviews[i]); err != nil {
			return err
		}
	}

	log.Print("database seeded with demo data")
	return nil
}

func main() {
	reset := flag.Bool("reset", false, "回滾所有 migration 後重建示範資料")
	flag.Parse()

	if err := run(*reset); err != nil {
		log.Fatal(err)
	}
}
