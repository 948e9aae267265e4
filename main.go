package main

import (
	"fmt"
	"log"

	"github.com/bhavika1504/my-finance-planner/internal/config"
	"github.com/bhavika1504/my-finance-planner/internal/database"
	"github.com/bhavika1504/my-finance-planner/internal/logger"
	"github.com/bhavika1504/my-finance-planner/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLog := logger.New(cfg.Log.Level)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		appLog.Fatal().Err(err).Msg("init database")
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		appLog.Fatal().Err(err).Msg("migrate database")
	}

	// setup router
	r := router.SetupRouter(cfg, db, appLog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	appLog.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		appLog.Fatal().Err(err).Msg("run server")
	}
}
