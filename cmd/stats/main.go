package main

import (
	stdLog "log"

	"github.com/aiu-lab/facility-service/stats/app"
	"github.com/aiu-lab/facility-service/stats/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using process environment")
	}
	if err := app.Run(config.NewConfig()); err != nil {
		stdLog.Fatal("app.Run ", zap.Error(err))
	}
}
