package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"productivity/internal/config"
	"productivity/internal/repository"
	"productivity/internal/service"
)

func main() {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("db handle")
	}
	defer sqlDB.Close()

	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	periodRepo := repository.NewTimePeriodRepository(db)

	ctx := context.Background()

	seeder := service.NewSeedService(db, taskRepo, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("seed")
	}

	planner := service.NewPlannerService(taskRepo, categoryRepo, periodRepo, logger)
	if err := planner.Refresh(ctx); err != nil {
		logger.Fatal().Err(err).Msg("refresh snapshots")
	}

	overview := service.NewOverviewService(planner)
	fmt.Fprintln(os.Stdout, overview.Render(time.Now()))
}

func newLogger() zerolog.Logger {
	writer := zerolog.NewConsoleWriter()
	writer.TimeFormat = time.DateTime
	writer.Out = os.Stderr
	return zerolog.New(writer).With().Timestamp().Logger()
}
