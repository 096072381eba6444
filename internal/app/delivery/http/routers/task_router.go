package routers

import (
	"caseview-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTaskRoutes(router chi.Router, taskController *controllers.TaskController) {
	router.Get("/{caseID}/tasks", taskController.GetTasks)
	router.Get("/{caseID}/conditions", taskController.GetConditions)
	router.Get("/{caseID}/documentation-requirements", taskController.GetDocumentationRequirements)
}
