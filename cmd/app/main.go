package main

import (
	"travelclock/config"
	"travelclock/di"
	"travelclock/shared/logger"
)

// @title Travelclock API
// @version 1.0
// @description Timezone-aware timestamps for travel bookings.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(nil)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
