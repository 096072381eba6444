package main

import (
	"caseview-service/internal/app/config"
	"caseview-service/internal/app/delivery/http/controllers"
	"caseview-service/internal/app/delivery/http/middlewares"
	"caseview-service/internal/app/delivery/http/routers"
	"caseview-service/internal/app/drivers/database"
	"caseview-service/internal/app/drivers/logger"
	"caseview-service/internal/app/services/casestatus"
	"caseview-service/internal/app/services/casestore"
	"caseview-service/internal/app/services/events"
	"caseview-service/internal/app/services/offices"
	"caseview-service/internal/app/services/payments"
	sharedRedis "caseview-service/internal/app/services/shared/redis"
	"caseview-service/internal/app/services/tasks"
	"caseview-service/internal/app/services/timeline"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	appMiddlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// External collaborators
	caseStoreClient := casestore.NewCaseStoreClient(bootstrap.InternalConfig.CaseStore, redisRepository, bootstrap.Logger)
	officeClient := offices.NewOfficeClient(bootstrap.InternalConfig.OfficeRegistry, redisRepository, bootstrap.Logger)

	// Event engine
	caseStateBuilder := events.NewEventService(caseStoreClient, officeClient, bootstrap.InternalConfig.CaseStore, bootstrap.Logger)

	// Projections
	caseStatusUsecase := casestatus.NewCaseStatusUsecase(caseStoreClient, caseStateBuilder, bootstrap.Logger)
	caseController := controllers.NewCaseController(bootstrap.Logger, caseStatusUsecase)

	taskUsecase := tasks.NewTaskUsecase(caseStoreClient, caseStateBuilder, bootstrap.Logger)
	taskController := controllers.NewTaskController(bootstrap.Logger, taskUsecase)

	paymentUsecase := payments.NewPaymentUsecase(caseStoreClient, caseStateBuilder, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	timelineUsecase := timeline.NewTimelineUsecase(caseStoreClient, caseStateBuilder, bootstrap.Logger)
	timelineController := controllers.NewTimelineController(bootstrap.Logger, timelineUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		caseController,
		taskController,
		paymentController,
		timelineController,
	)
}
