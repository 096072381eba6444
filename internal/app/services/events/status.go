package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"context"
	"fmt"
)

func (s *eventService) applyApplicationStatus(ctx context.Context, state *models.CaseState, event casedoc.Event) error {
	payload := new(casedoc.ApplicationStatusEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	status, err := parseApplicationStatus(payload.Status)
	if err != nil {
		return err
	}

	state.Status = status

	entry := models.HistoryEntry{Timestamp: event.Timestamp}
	switch status {
	case models.ApplicationStatusSent:
		if state.SubmissionOffice != nil && state.SubmissionOffice.Name != "" {
			entry.Title = fmt.Sprintf(constvars.HistoryApplicationSentWithOffice, state.SubmissionOffice.Name)
		} else {
			entry.Title = constvars.HistoryApplicationSent
		}
	case models.ApplicationStatusReceived:
		if state.SubmissionOffice != nil && state.SubmissionOffice.Name != "" {
			entry.Title = fmt.Sprintf(constvars.HistoryApplicationReceivedWithOffice, state.SubmissionOffice.Name)
		} else {
			entry.Title = constvars.HistoryApplicationReceived
		}
	case models.ApplicationStatusUnderProcessing:
		entry.Title = constvars.HistoryApplicationUnderProcessing
	case models.ApplicationStatusCompleted:
		entry.Title = constvars.HistoryApplicationCompleted
	case models.ApplicationStatusNotProcessed:
		entry.Title = constvars.HistoryApplicationNotProcessed
	}
	state.History = append(state.History, entry)

	return nil
}

func parseApplicationStatus(value string) (models.ApplicationStatus, error) {
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusSent,
		models.ApplicationStatusReceived,
		models.ApplicationStatusUnderProcessing,
		models.ApplicationStatusCompleted,
		models.ApplicationStatusNotProcessed:
		return models.ApplicationStatus(value), nil
	default:
		return "", exceptions.ErrUnknownEnumValue("status", value)
	}
}
