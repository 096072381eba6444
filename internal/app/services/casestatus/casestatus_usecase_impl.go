package casestatus

import (
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/dto/responses"
	"caseview-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type caseStatusUsecase struct {
	CaseStoreClient  contracts.CaseStoreClient
	CaseStateBuilder contracts.CaseStateBuilder
	Log              *zap.Logger
}

var (
	caseStatusUsecaseInstance contracts.CaseStatusUsecase
	onceCaseStatusUsecase     sync.Once
)

func NewCaseStatusUsecase(
	caseStoreClient contracts.CaseStoreClient,
	caseStateBuilder contracts.CaseStateBuilder,
	logger *zap.Logger,
) contracts.CaseStatusUsecase {
	onceCaseStatusUsecase.Do(func() {
		caseStatusUsecaseInstance = &caseStatusUsecase{
			CaseStoreClient:  caseStoreClient,
			CaseStateBuilder: caseStateBuilder,
			Log:              logger,
		}
	})
	return caseStatusUsecaseInstance
}

func (uc *caseStatusUsecase) FindAllCases(ctx context.Context, token string) ([]responses.CaseSummary, error) {
	uc.Log.Info("caseStatusUsecase.FindAllCases called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingApplicantIDKey, utils.GetApplicantID(ctx)),
	)

	storedCases, err := uc.CaseStoreClient.GetAllStoredCases(ctx, token)
	if err != nil {
		uc.Log.Error("caseStatusUsecase.FindAllCases error fetching stored cases",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	summaries := make([]responses.CaseSummary, 0, len(storedCases))
	for _, storedCase := range storedCases {
		state, err := uc.CaseStateBuilder.BuildCaseState(ctx, token, storedCase)
		if err != nil {
			uc.Log.Error("caseStatusUsecase.FindAllCases error folding case",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingCaseIDKey, storedCase.CaseID),
				zap.Error(err),
			)
			return nil, err
		}

		summary := responses.CaseSummary{
			CaseID:             storedCase.CaseID,
			Status:             string(state.Status),
			SubmittedAt:        state.SubmittedAt,
			LastUpdated:        utils.UnixMillisToTime(storedCase.LastUpdated),
			IsPaperApplication: storedCase.OriginalApplication == nil,
		}
		if state.SubmissionOffice != nil {
			summary.OfficeName = state.SubmissionOffice.Name
		}
		if state.SourceSystem != nil {
			summary.SourceSystem = state.SourceSystem.Name
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (uc *caseStatusUsecase) GetCaseStatus(ctx context.Context, token, caseID string) (*responses.CaseStatusResponse, error) {
	uc.Log.Info("caseStatusUsecase.GetCaseStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingApplicantIDKey, utils.GetApplicantID(ctx)),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	storedCase, err := uc.CaseStoreClient.GetStoredCase(ctx, token, caseID)
	if err != nil {
		return nil, err
	}

	state, err := uc.CaseStateBuilder.BuildCaseState(ctx, token, storedCase)
	if err != nil {
		return nil, err
	}

	response := &responses.CaseStatusResponse{
		Status: string(state.Status),
		Cases:  make([]responses.CaseStatus, 0, len(state.Cases)),
	}
	for _, c := range state.Cases {
		response.Cases = append(response.Cases, convertCase(c))
	}
	if state.InterimResponse.Received {
		response.InterimResponse = &responses.LetterLink{
			Received: true,
			Link:     state.InterimResponse.Link,
		}
	}

	return response, nil
}

func convertCase(c *models.Case) responses.CaseStatus {
	converted := responses.CaseStatus{
		Reference: c.Reference,
		Title:     c.Title,
		Status:    string(c.Status),
	}
	for _, decision := range c.Decisions {
		converted.Decisions = append(converted.Decisions, responses.DecisionInfo{
			ID:      decision.ID,
			Outcome: string(decision.Outcome),
			FileURL: decision.FileURL,
			Date:    decision.Date,
		})
	}
	return converted
}
