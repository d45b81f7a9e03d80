// Command seeder loads the sample Luxembourgish topics and cards into the
// database. It is idempotent and intended to be run offline by an operator,
// not as part of a server process.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/learnlux/learnlux-backend/internal/adapter/postgres"
	"github.com/learnlux/learnlux-backend/internal/adapter/postgres/card"
	"github.com/learnlux/learnlux-backend/internal/adapter/postgres/topic"
	"github.com/learnlux/learnlux-backend/internal/app"
	"github.com/learnlux/learnlux-backend/internal/app/seeder"
	"github.com/learnlux/learnlux-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting seeder", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, topic.New(pool), card.New(pool))
	sum, err := s.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("topics_created", sum.TopicsCreated),
		slog.Int("cards_created", sum.VocabCreated+sum.PhrasesCreated),
	)
}
