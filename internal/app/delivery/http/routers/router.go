package routers

import (
	"caseview-service/internal/app/config"
	"caseview-service/internal/app/delivery/http/controllers"
	"caseview-service/internal/app/delivery/http/middlewares"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	caseController *controllers.CaseController,
	taskController *controllers.TaskController,
	paymentController *controllers.PaymentController,
	timelineController *controllers.TimelineController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: internalConfig.App.CorsAllowCredentials,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/cases", func(r chi.Router) {
					attachCaseRoutes(r, caseController)
					attachTaskRoutes(r, taskController)
					attachCasePaymentRoutes(r, paymentController)
					attachTimelineRoutes(r, timelineController)
				})

				r.Route("/payments", func(r chi.Router) {
					attachPaymentOverviewRoutes(r, paymentController)
				})
			})
		})
	})
}
