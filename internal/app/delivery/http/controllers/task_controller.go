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

type TaskController struct {
	Log         *zap.Logger
	TaskUsecase contracts.TaskUsecase
}

func NewTaskController(logger *zap.Logger, taskUsecase contracts.TaskUsecase) *TaskController {
	return &TaskController{
		Log:         logger,
		TaskUsecase: taskUsecase,
	}
}

func (ctrl *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pathParams := requests.CasePath{CaseID: chi.URLParam(r, "caseID")}
	if err := utils.ValidateStruct(pathParams); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.TaskUsecase.GetTasks(ctx, utils.GetBearerToken(ctx), pathParams.CaseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTasksSuccessMessage, response)
}

func (ctrl *TaskController) GetConditions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pathParams := requests.CasePath{CaseID: chi.URLParam(r, "caseID")}
	if err := utils.ValidateStruct(pathParams); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.TaskUsecase.GetConditions(ctx, utils.GetBearerToken(ctx), pathParams.CaseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConditionsSuccessMessage, response)
}

func (ctrl *TaskController) GetDocumentationRequirements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pathParams := requests.CasePath{CaseID: chi.URLParam(r, "caseID")}
	if err := utils.ValidateStruct(pathParams); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.TaskUsecase.GetDocumentationRequirements(ctx, utils.GetBearerToken(ctx), pathParams.CaseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocRequirementsSuccess, response)
}
