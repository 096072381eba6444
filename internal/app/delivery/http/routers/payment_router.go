package routers

import (
	"caseview-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCasePaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Get("/{caseID}/payments", paymentController.GetCasePayments)
}

func attachPaymentOverviewRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Get("/overview", paymentController.GetPaymentOverview)
}
