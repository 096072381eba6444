package timeline

import (
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/dto/responses"
	"caseview-service/internal/pkg/utils"
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type timelineUsecase struct {
	CaseStoreClient  contracts.CaseStoreClient
	CaseStateBuilder contracts.CaseStateBuilder
	Log              *zap.Logger
}

var (
	timelineUsecaseInstance contracts.TimelineUsecase
	onceTimelineUsecase     sync.Once
)

func NewTimelineUsecase(
	caseStoreClient contracts.CaseStoreClient,
	caseStateBuilder contracts.CaseStateBuilder,
	logger *zap.Logger,
) contracts.TimelineUsecase {
	onceTimelineUsecase.Do(func() {
		timelineUsecaseInstance = &timelineUsecase{
			CaseStoreClient:  caseStoreClient,
			CaseStateBuilder: caseStateBuilder,
			Log:              logger,
		}
	})
	return timelineUsecaseInstance
}

func (uc *timelineUsecase) GetTimeline(ctx context.Context, token, caseID string) ([]responses.TimelineEntry, error) {
	uc.Log.Info("timelineUsecase.GetTimeline called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
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

	entries := make([]responses.TimelineEntry, 0, len(state.History))
	for _, entry := range state.History {
		converted := responses.TimelineEntry{
			Title:     entry.Title,
			Timestamp: entry.Timestamp,
		}
		if entry.Link != nil {
			converted.Link = &responses.TimelineLink{
				Text: entry.Link.Text,
				URL:  entry.Link.URL,
			}
		}
		entries = append(entries, converted)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries, nil
}
