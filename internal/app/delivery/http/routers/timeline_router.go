package routers

import (
	"caseview-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTimelineRoutes(router chi.Router, timelineController *controllers.TimelineController) {
	router.Get("/{caseID}/timeline", timelineController.GetTimeline)
}
