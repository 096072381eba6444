package routers

import (
	"caseview-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCaseRoutes(router chi.Router, caseController *controllers.CaseController) {
	router.Get("/", caseController.FindAllCases)
	router.Get("/{caseID}/status", caseController.GetCaseStatus)
}
