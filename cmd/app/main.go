package main

import (
	"salon/config"
	"salon/di"
	"salon/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSON(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
