package events

import (
	"caseview-service/internal/app/config"
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	eventServiceInstance contracts.CaseStateBuilder
	onceEventService     sync.Once
)

type eventService struct {
	CaseStoreClient contracts.CaseStoreClient
	OfficeClient    contracts.OfficeClient
	URLResolver     *DocumentURLResolver
	Log             *zap.Logger
}

func NewEventService(
	caseStoreClient contracts.CaseStoreClient,
	officeClient contracts.OfficeClient,
	cfg config.CaseStore,
	logger *zap.Logger,
) contracts.CaseStateBuilder {
	onceEventService.Do(func() {
		eventServiceInstance = &eventService{
			CaseStoreClient: caseStoreClient,
			OfficeClient:    officeClient,
			URLResolver:     NewDocumentURLResolver(cfg.DocumentBaseUrl),
			Log:             logger,
		}
	})
	return eventServiceInstance
}

// BuildCaseState folds the stored case's event log, together with the
// original-application snapshot, into a fresh CaseState. The fold is
// recomputed on every call; nothing derived is persisted.
func (s *eventService) BuildCaseState(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*models.CaseState, error) {
	state := models.NewCaseState()
	state.CaseID = storedCase.CaseID

	err := s.seedSubmission(ctx, token, state, storedCase)
	if err != nil {
		return nil, err
	}

	eventLog, err := s.CaseStoreClient.GetEventLog(ctx, token, storedCase)
	if err != nil {
		return nil, err
	}

	if eventLog != nil {
		if eventLog.Sender != nil {
			state.SourceSystem = &models.SourceSystem{
				Name:    eventLog.Sender.SystemName,
				Version: eventLog.Sender.SystemVersion,
			}
		}

		sorted := sortEvents(eventLog.Events)
		for _, event := range sorted {
			err = s.apply(ctx, state, event, storedCase)
			if err != nil {
				return nil, err
			}
		}
	}

	err = s.applySupplementalTasks(ctx, token, state, storedCase, eventLog)
	if err != nil {
		return nil, err
	}

	s.overrideCompletedWithActiveCases(ctx, state)

	return state, nil
}

// BuildPaymentState folds only the case-status and payment events of the
// stored case, so each payment resolves to the same home as in the full
// fold. The cross-case payment projection calls it once per case.
func (s *eventService) BuildPaymentState(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*models.CaseState, error) {
	state := models.NewCaseState()
	state.CaseID = storedCase.CaseID

	eventLog, err := s.CaseStoreClient.GetEventLog(ctx, token, storedCase)
	if err != nil {
		return nil, err
	}
	if eventLog == nil {
		return state, nil
	}

	sorted := sortEvents(eventLog.Events)
	for _, event := range sorted {
		switch event.Type {
		case casedoc.EventTypeCaseStatus:
			err = s.applyCaseStatus(ctx, state, event)
		case casedoc.EventTypePayment:
			err = s.applyPayment(ctx, state, event)
		default:
		}
		if err != nil {
			return nil, err
		}
	}

	return state, nil
}

// apply dispatches one event to its reducer. The variant set is closed: an
// unknown type aborts the whole fold.
func (s *eventService) apply(ctx context.Context, state *models.CaseState, event casedoc.Event, storedCase *casedoc.StoredCase) error {
	switch event.Type {
	case casedoc.EventTypeApplicationStatus:
		return s.applyApplicationStatus(ctx, state, event)
	case casedoc.EventTypeCaseStatus:
		return s.applyCaseStatus(ctx, state, event)
	case casedoc.EventTypePayment:
		return s.applyPayment(ctx, state, event)
	case casedoc.EventTypeCondition:
		return s.applyCondition(ctx, state, event)
	case casedoc.EventTypeDocumentationRequirement:
		return s.applyDocumentationRequirement(ctx, state, event)
	case casedoc.EventTypeDocumentRequested:
		return s.applyDocumentRequested(ctx, state, event, storedCase)
	case casedoc.EventTypeInterimResponse:
		return s.applyInterimResponse(ctx, state, event, storedCase)
	case casedoc.EventTypeDecisionMade:
		return s.applyDecisionMade(ctx, state, event, storedCase)
	case casedoc.EventTypeOfficeAssignment:
		return s.applyOfficeAssignment(ctx, state, event, storedCase)
	case casedoc.EventTypeFrameDecision:
		// Frame decisions carry nothing the applicant sees.
		return nil
	default:
		return exceptions.ErrUnknownEventType(string(event.Type))
	}
}

// seedSubmission sets the submission metadata from the original application
// before any event is applied. Paper applications have no snapshot and skip
// all of this.
func (s *eventService) seedSubmission(ctx context.Context, token string, state *models.CaseState, storedCase *casedoc.StoredCase) error {
	info := storedCase.OriginalApplication
	if info == nil {
		return nil
	}

	state.Reference = info.ExternalReference
	if info.SubmittedAt > 0 {
		submittedAt := utils.UnixMillisToTime(info.SubmittedAt)
		state.SubmittedAt = &submittedAt
	} else {
		s.Log.Error("eventService.seedSubmission submission timestamp missing",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, storedCase.CaseID),
		)
	}

	application, err := s.CaseStoreClient.GetOriginalApplication(ctx, token, storedCase)
	if err != nil {
		return err
	}
	if application != nil && application.Receiver != nil {
		state.SubmissionOffice = &models.SubmissionOffice{
			ID:   application.Receiver.OfficeID,
			Name: stripMunicipalitySuffix(application.Receiver.OfficeName),
		}
	}

	if state.SubmittedAt != nil {
		entry := models.HistoryEntry{
			Timestamp: *state.SubmittedAt,
			Link: &models.Link{
				Text: constvars.LinkTextViewApplication,
				URL:  s.URLResolver.ApplicationURL(storedCase.CaseID, info.ApplicationDocumentID),
			},
		}
		if state.SubmissionOffice != nil && state.SubmissionOffice.Name != "" {
			entry.Title = fmt.Sprintf(constvars.HistoryApplicationSentWithOffice, state.SubmissionOffice.Name)
		} else {
			entry.Title = constvars.HistoryApplicationSent
		}
		state.History = append(state.History, entry)
	}

	return nil
}

// overrideCompletedWithActiveCases guards against upstream logs where the
// application-level COMPLETED event arrives while cases are still open
// without a decision. The applicant should keep seeing "under processing".
func (s *eventService) overrideCompletedWithActiveCases(ctx context.Context, state *models.CaseState) {
	if state.Status != models.ApplicationStatusCompleted {
		return
	}
	for _, c := range state.Cases {
		if c.Status == models.CaseStatusUnderProcessing && len(c.Decisions) == 0 {
			s.Log.Info("eventService.overrideCompletedWithActiveCases keeping status under processing",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingCaseIDKey, state.CaseID),
				zap.String("case_reference", c.Reference),
			)
			state.Status = models.ApplicationStatusUnderProcessing
			return
		}
	}
}

func (s *eventService) decode(event casedoc.Event, target interface{}) error {
	err := json.Unmarshal(event.Raw, target)
	if err != nil {
		return exceptions.ErrDecodeEventLog(err)
	}
	return nil
}

func stripMunicipalitySuffix(officeName string) string {
	return strings.TrimSuffix(officeName, constvars.MunicipalitySuffix)
}
