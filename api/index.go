package handler

import (
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"
	transport "frontdesk/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the console API as a single serverless function. Wizards and consoles
// live in memory, so they survive only as long as the warm instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		timezone.Setup(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
