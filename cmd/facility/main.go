package main

import (
	stdLog "log"
	"time"

	"github.com/aiu-lab/facility-service/facility/app"
	"github.com/aiu-lab/facility-service/facility/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title       Facility service API
// @version     1.0
// @description Equipment rental, bundled equipment requests and lab seat booking.
// @BasePath    /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using process environment")
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", zap.Error(err))
	}
}
