package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rock-catalog/internal/config"
	"github.com/iliyamo/rock-catalog/internal/database"
	"github.com/iliyamo/rock-catalog/internal/handler"
	"github.com/iliyamo/rock-catalog/internal/httperr"
	"github.com/iliyamo/rock-catalog/internal/middleware"
	"github.com/iliyamo/rock-catalog/internal/repository"
	"github.com/iliyamo/rock-catalog/internal/router"
	queue_publisher "github.com/iliyamo/rock-catalog/internal/service"
	"github.com/iliyamo/rock-catalog/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	rocks := repository.NewRockRepo(db)
	uploads := storage.NewUploads(cfg.UploadDir)

	authH := handler.NewAuthHandler(cfg, users)
	rockH := handler.NewRockHandler(rocks, uploads)
	rockH.PublishCreated = queue_publisher.PublishRockCreated
	rockH.PublishDeleted = queue_publisher.PublishRockDeleted
	uploadH := handler.NewUploadHandler(uploads)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httperr.NewHTTPErrorHandler(cfg.Env)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, limiter)
	router.RegisterRocks(e, rockH, uploadH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
