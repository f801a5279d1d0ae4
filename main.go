// @title ML Course API
// @version 1.0
// @description Backend server for the machine learning e-learning platform.

// @host localhost:9000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"mlcourse_backend/internal/app"
	"mlcourse_backend/internal/config"
	"mlcourse_backend/pkg/configwatcher"
	"mlcourse_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
