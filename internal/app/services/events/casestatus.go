package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
)

func (s *eventService) applyCaseStatus(ctx context.Context, state *models.CaseState, event casedoc.Event) error {
	payload := new(casedoc.CaseStatusEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	status, err := parseCaseStatus(payload.Status)
	if err != nil {
		return err
	}

	existing := findCase(state, payload.CaseReference)
	if existing != nil {
		previous := existing.Status
		existing.Status = status
		if payload.Title != "" {
			existing.Title = payload.Title
		}

		if transition := transitionNarrative(previous, status, existing.Title); transition != "" {
			state.History = append(state.History, models.HistoryEntry{
				Title:     transition,
				Timestamp: event.Timestamp,
			})
		}
		return nil
	}

	if state.Status == models.ApplicationStatusCompleted {
		// Late case creation after completion points at upstream noise.
		s.Log.Warn("eventService.applyCaseStatus case created after completion",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.String("case_reference", payload.CaseReference),
		)
	}

	newCase := &models.Case{
		Reference: payload.CaseReference,
		Status:    status,
		Title:     payload.Title,
		Decisions: []models.Decision{},
		Payments:  []*models.Payment{},
	}
	state.Cases = append(state.Cases, newCase)

	if creation := creationNarrative(status, newCase.Title); creation != "" {
		state.History = append(state.History, models.HistoryEntry{
			Title:     creation,
			Timestamp: event.Timestamp,
		})
	}

	return nil
}

// transitionNarrative yields text only when the case moves into
// {NOT_PROCESSED, NO_INSIGHT} or moves out of that set into UNDER_PROCESSING.
func transitionNarrative(previous, current models.CaseStatus, title string) string {
	if previous == current {
		return ""
	}
	switch current {
	case models.CaseStatusNotProcessed:
		if title != "" {
			return fmt.Sprintf(constvars.HistoryCaseNotProcessedTitled, title)
		}
		return constvars.HistoryCaseNotProcessed
	case models.CaseStatusNoInsight:
		if title != "" {
			return fmt.Sprintf(constvars.HistoryCaseNoInsightTitled, title)
		}
		return constvars.HistoryCaseNoInsight
	case models.CaseStatusUnderProcessing:
		if previous == models.CaseStatusNotProcessed || previous == models.CaseStatusNoInsight {
			if title != "" {
				return fmt.Sprintf(constvars.HistoryCaseUnderProcessingTitled, title)
			}
			return constvars.HistoryCaseUnderProcessing
		}
	}
	return ""
}

func creationNarrative(status models.CaseStatus, title string) string {
	switch status {
	case models.CaseStatusUnderProcessing:
		if title != "" {
			return fmt.Sprintf(constvars.HistoryCaseUnderProcessingTitled, title)
		}
		return constvars.HistoryCaseUnderProcessing
	case models.CaseStatusNotProcessed:
		if title != "" {
			return fmt.Sprintf(constvars.HistoryCaseNotProcessedTitled, title)
		}
		return constvars.HistoryCaseNotProcessed
	case models.CaseStatusNoInsight:
		if title != "" {
			return fmt.Sprintf(constvars.HistoryCaseNoInsightTitled, title)
		}
		return constvars.HistoryCaseNoInsight
	}
	return ""
}

func parseCaseStatus(value string) (models.CaseStatus, error) {
	switch models.CaseStatus(value) {
	case models.CaseStatusUnderProcessing,
		models.CaseStatusNoInsight,
		models.CaseStatusCompleted,
		models.CaseStatusNotProcessed,
		models.CaseStatusMisregistered:
		return models.CaseStatus(value), nil
	default:
		return "", exceptions.ErrUnknownEnumValue("caseStatus", value)
	}
}

func findCase(state *models.CaseState, reference string) *models.Case {
	for _, c := range state.Cases {
		if c.Reference == reference {
			return c
		}
	}
	return nil
}
