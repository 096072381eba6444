package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

func (s *eventService) applyDocumentRequested(ctx context.Context, state *models.CaseState, event casedoc.Event, storedCase *casedoc.StoredCase) error {
	payload := new(casedoc.DocumentRequestedEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	hadTasks := len(state.Tasks) > 0

	// The event always carries the complete current set; the previous task
	// list is discarded wholesale.
	tasks := make([]*models.Task, 0, len(payload.Documents))
	for _, doc := range payload.Documents {
		tasks = append(tasks, &models.Task{
			ID:         utils.HashStrings(doc.DocumentType, doc.AdditionalInfo, doc.Deadline),
			Title:      doc.DocumentType,
			ExtraInfo:  doc.AdditionalInfo,
			Deadline:   s.parseDate(ctx, doc.Deadline),
			CreatedAt:  event.Timestamp,
			FromPortal: true,
		})
	}
	state.Tasks = tasks

	if len(tasks) > 0 {
		entry := models.HistoryEntry{
			Title:     constvars.HistoryDocumentsRequested,
			Timestamp: event.Timestamp,
		}
		entry.Link = s.letterLink(ctx, state, payload.Letter, storedCase)
		state.History = append(state.History, entry)
		return nil
	}

	if hadTasks && !isTerminal(state.Status) {
		state.History = append(state.History, models.HistoryEntry{
			Title:     constvars.HistoryDocumentsReviewed,
			Timestamp: event.Timestamp,
		})
	}

	return nil
}

func (s *eventService) applyInterimResponse(ctx context.Context, state *models.CaseState, event casedoc.Event, storedCase *casedoc.StoredCase) error {
	payload := new(casedoc.InterimResponseEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	entry := models.HistoryEntry{
		Title:     constvars.HistoryInterimResponse,
		Timestamp: event.Timestamp,
	}
	entry.Link = s.letterLink(ctx, state, payload.Letter, storedCase)

	state.InterimResponse = models.InterimResponse{Received: true}
	if entry.Link != nil {
		state.InterimResponse.Link = entry.Link.URL
	}
	state.History = append(state.History, entry)

	return nil
}

func (s *eventService) applyDecisionMade(ctx context.Context, state *models.CaseState, event casedoc.Event, storedCase *casedoc.StoredCase) error {
	payload := new(casedoc.DecisionMadeEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	outcome, err := parseDecisionOutcome(payload.Outcome)
	if err != nil {
		return err
	}

	target := findCase(state, payload.CaseReference)
	if target == nil {
		s.Log.Warn("eventService.applyDecisionMade decision for unknown case",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.String("case_reference", payload.CaseReference),
		)
		target = &models.Case{
			Reference: payload.CaseReference,
			Status:    models.CaseStatusUnderProcessing,
			Decisions: []models.Decision{},
			Payments:  []*models.Payment{},
		}
		state.Cases = append(state.Cases, target)
	}

	decisionDate := event.Timestamp
	decision := models.Decision{
		ID:      utils.HashStrings(payload.CaseReference, payload.Outcome, event.Timestamp.String()),
		Outcome: outcome,
		Date:    &decisionDate,
	}

	entry := models.HistoryEntry{
		Title:     constvars.HistoryDecisionMade,
		Timestamp: event.Timestamp,
	}
	if url, err := s.URLResolver.ResolveFileURL(storedCase.CaseID, payload.DecisionFile); err == nil {
		decision.FileURL = url
		entry.Link = &models.Link{Text: constvars.LinkTextViewDecision, URL: url}
	} else {
		s.Log.Warn("eventService.applyDecisionMade could not resolve decision file",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.Error(err),
		)
	}

	target.Decisions = append(target.Decisions, decision)
	state.History = append(state.History, entry)

	return nil
}

func (s *eventService) letterLink(ctx context.Context, state *models.CaseState, letter *casedoc.FileReference, storedCase *casedoc.StoredCase) *models.Link {
	if letter == nil {
		return nil
	}
	url, err := s.URLResolver.ResolveFileURL(storedCase.CaseID, letter)
	if err != nil {
		s.Log.Warn("eventService.letterLink could not resolve letter",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.Error(err),
		)
		return nil
	}
	return &models.Link{Text: constvars.LinkTextViewLetter, URL: url}
}

func isTerminal(status models.ApplicationStatus) bool {
	return status == models.ApplicationStatusCompleted || status == models.ApplicationStatusNotProcessed
}

func parseDecisionOutcome(value string) (models.DecisionOutcome, error) {
	switch models.DecisionOutcome(value) {
	case models.DecisionOutcomeGranted,
		models.DecisionOutcomePartiallyGranted,
		models.DecisionOutcomeDenied,
		models.DecisionOutcomeRejected:
		return models.DecisionOutcome(value), nil
	default:
		return "", exceptions.ErrUnknownEnumValue("outcome", value)
	}
}
