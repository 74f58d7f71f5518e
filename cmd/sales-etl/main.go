package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	. "github.com/bakehouse/sales-etl/internal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := NewConfig()
	if err != nil {
		log.Printf("configuration error: %v", err)
		return 1
	}

	z, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Printf("logger error: %v", err)
		return 1
	}
	defer z.Sync()
	logger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Errorf("repository init failed: %v", err)
		return 1
	}
	defer repository.Close()

	client := NewSquareClient(cfg.SquareBaseURL, cfg.SquareToken, cfg.LocationTokens, cfg.TestMode, logger)
	transformer := NewTransformer(logger)

	etl := NewETL(client, transformer, repository, cfg, logger)

	report, err := etl.Run(context.Background())
	if err != nil {
		logger.Errorf("run aborted: %v", err)
		return 1
	}
	if !report.Success() {
		return 1
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(level); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
