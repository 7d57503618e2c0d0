package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	httpapi "github.com/eventconnect/backend/internal/api/http"
	"github.com/eventconnect/backend/internal/config"
	"github.com/eventconnect/backend/internal/repository"
	"github.com/eventconnect/backend/internal/repository/model"
	"github.com/eventconnect/backend/internal/service"
	"github.com/eventconnect/backend/lib/logger/slogpretty"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		log.Error("failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := repository.NewPostgresUserRepository(db)
	eventRepo := repository.NewPostgresEventRepository(db)
	rsvpRepo := repository.NewPostgresRSVPRepository(db)
	chatRepo := repository.NewPostgresChatRepository(db)

	userService := service.NewUserService(userRepo, log)
	eventService := service.NewEventService(eventRepo, userRepo, rsvpRepo, log)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, log)
	chatService := service.NewChatService(chatRepo, rsvpRepo, eventRepo, userRepo, cfg.Chat.MaxMessageLength, log)

	hub := httpapi.NewChatHub()

	userController := httpapi.NewUserController(userService, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	eventController := httpapi.NewEventController(eventService, rsvpService)
	chatController := httpapi.NewChatController(chatService, hub, log)

	router := httpapi.SetupRouter(httpapi.RouterConfig{AuthSecret: cfg.Auth.Secret}, eventController, userController, chatController)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(&model.User{}, &model.Event{}, &model.EventRSVP{}, &model.ChatMessage{})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
