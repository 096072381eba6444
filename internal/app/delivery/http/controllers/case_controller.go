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

type CaseController struct {
	Log               *zap.Logger
	CaseStatusUsecase contracts.CaseStatusUsecase
}

func NewCaseController(logger *zap.Logger, caseStatusUsecase contracts.CaseStatusUsecase) *CaseController {
	return &CaseController{
		Log:               logger,
		CaseStatusUsecase: caseStatusUsecase,
	}
}

func (ctrl *CaseController) FindAllCases(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CaseStatusUsecase.FindAllCases(ctx, utils.GetBearerToken(ctx))
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCasesSuccessMessage, response)
}

func (ctrl *CaseController) GetCaseStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pathParams := requests.CasePath{CaseID: chi.URLParam(r, "caseID")}
	if err := utils.ValidateStruct(pathParams); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.CaseStatusUsecase.GetCaseStatus(ctx, utils.GetBearerToken(ctx), pathParams.CaseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCaseStatusSuccessMessage, response)
}
