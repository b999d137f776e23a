package main

import (
	"os"

	"todayrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title TodayRates API
// @version 1.0
// @description Myanmar retail exchange-rate and gold-price service.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application terminated with error")
		os.Exit(1)
	}
}
