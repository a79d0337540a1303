package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-order-pipeline/internal/api"
	"go-order-pipeline/internal/api/handler"
	"go-order-pipeline/internal/config"
	"go-order-pipeline/internal/formapi"
	"go-order-pipeline/internal/pipeline"
	"go-order-pipeline/internal/store"
	"go-order-pipeline/pkg/router"
	"go-order-pipeline/pkg/utils"
)

// @title Order Pipeline API
// @version 1.0
// @description Reshapes form submissions into normalized order lines for invoicing.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.APIKey == "" {
		log.Fatal("JOTFORM_API_KEY is not set")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := store.InitDB(cfg.DBPath); err != nil {
		sugar.Fatalw("failed to init database", "path", cfg.DBPath, "error", err)
	}
	defer store.CloseDB()

	fetcher := formapi.NewClient(cfg.BaseURL, cfg.APIKey, nil)
	p := pipeline.New(fetcher, cfg, sugar)
	p.Store = store.RunStore{}
	p.Outputs = utils.NewOutputManager(cfg.OutputDir)

	r := router.New(sugar)
	api.RegisterRoutes(r, handler.NewOrderHandler(p))

	if err := r.Start(cfg.ListenAddr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
