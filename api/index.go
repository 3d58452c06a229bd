package handler

import (
	"net/http"
	"salon/config"
	"salon/di"
	"salon/shared/logger"
	"sync"

	transport "salon/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless function. The dataset is loaded once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseJSON(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
