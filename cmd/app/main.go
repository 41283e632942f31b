package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Setup(cfg)

	http := di.InitializeService()
	http.Serve()
}
