package controllers

import (
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/dto/requests"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TimelineController struct {
	Log             *zap.Logger
	TimelineUsecase contracts.TimelineUsecase
}

func NewTimelineController(logger *zap.Logger, timelineUsecase contracts.TimelineUsecase) *TimelineController {
	return &TimelineController{
		Log:             logger,
		TimelineUsecase: timelineUsecase,
	}
}

func (ctrl *TimelineController) GetTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pathParams := requests.CasePath{CaseID: chi.URLParam(r, "caseID")}
	if err := utils.ValidateStruct(pathParams); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.TimelineUsecase.GetTimeline(ctx, utils.GetBearerToken(ctx), pathParams.CaseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimelineSuccessMessage, response)
}
