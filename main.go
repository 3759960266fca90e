package main

import (
	"context"
	"log"
	"maintdesk-backend/controller"
	"maintdesk-backend/middelware"
	"maintdesk-backend/models"
	"maintdesk-backend/utils"
	"maintdesk-backend/utils/logger"
	"maintdesk-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Config loaded: %s", utils.PrintPrettyJSON(config))

	r := gin.New()

	logging := middelware.NewLoggingMiddleware(appLogger)
	r.Use(logging.Recovery())
	r.Use(logging.StructuredLogger())
	r.Use(middelware.NewCORSMiddleware(config).CORS())

	c := controller.NewController(ctx, config, appLogger)

	// Start server (this is blocking)
	go c.RegisterRoutes(ctx, config, r, config.BasePath)

	// Start the maintenance sweep worker (cron job)
	sweepWorker, err := worker.NewService(ctx, config, appLogger)
	if err != nil {
		log.Fatalf("Failed to create sweep worker: %v", err)
	}

	if err := sweepWorker.StartInBackground(); err != nil {
		log.Fatalf("Failed to start sweep worker: %v", err)
	}

	// Keep main goroutine alive
	select {}
}
