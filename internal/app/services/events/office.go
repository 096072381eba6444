package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

func (s *eventService) applyOfficeAssignment(ctx context.Context, state *models.CaseState, event casedoc.Event, storedCase *casedoc.StoredCase) error {
	payload := new(casedoc.OfficeAssignmentEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	if payload.OfficeID == state.AssignedOffice {
		return nil
	}
	if state.SubmissionOffice != nil && payload.OfficeID == state.SubmissionOffice.ID {
		return nil
	}

	firstAssignment := state.AssignedOffice == ""
	state.AssignedOffice = payload.OfficeID

	officeName, err := s.OfficeClient.GetOfficeName(ctx, payload.OfficeID)
	if err != nil {
		// Lookup failures never surface; the narrative falls back.
		s.Log.Warn("eventService.applyOfficeAssignment office lookup failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.String("office_id", payload.OfficeID),
			zap.Error(err),
		)
		officeName = ""
	}

	// Paper applications have no submission snapshot; the first assignment
	// is where the applicant learns the application arrived at all.
	var title string
	switch {
	case firstAssignment && storedCase.OriginalApplication == nil && officeName != "":
		title = fmt.Sprintf(constvars.HistoryApplicationReceivedWithOffice, stripMunicipalitySuffix(officeName))
	case firstAssignment && storedCase.OriginalApplication == nil:
		title = constvars.HistoryApplicationReceived
	case officeName != "":
		title = fmt.Sprintf(constvars.HistoryForwardedToOffice, stripMunicipalitySuffix(officeName))
	default:
		title = constvars.HistoryForwardedGeneric
	}

	state.History = append(state.History, models.HistoryEntry{
		Title:     title,
		Timestamp: event.Timestamp,
	})

	return nil
}
