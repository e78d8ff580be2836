// File: cmd/service/main.go
// @title        Restaurant Reviews API
// @version      1.0
// @description  餐廳評價後端 API：使用者、餐廳、評價與評分報表
// @host         localhost:8080
// @BasePath     /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/logger"
	"restaurant-reviews/internal/router"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "restaurant-reviews/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	setupLogger     = logger.Setup
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	// .env 存在時載入，找不到就直接依賴環境變數
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found – relying on env vars")
	}

	setupLogger()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}
	logrus.Info("migrations applied")

	e := echo.New()
	e.Validator = api.NewValidator()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logrus.WithField("addr", addr).Info("starting server")
	return startServer(e, addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
