package handler

import (
	"net/http"
	"sync"

	"travelclock/config"
	"travelclock/di"
	"travelclock/shared/logger"
)

var (
	app  http.Handler
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(nil)

		logger.SetLogLevel(cfg)

		app = di.InitializeService().Handler()
	})

	app.ServeHTTP(w, r)
}
