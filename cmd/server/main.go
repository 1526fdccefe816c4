package main

import (
	"campaign-widget-service/internal/app"
	"campaign-widget-service/internal/config"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.Server.LogLevel)
	app.Run(cfg)
}
