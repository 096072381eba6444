package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

func (s *eventService) applyDocumentationRequirement(ctx context.Context, state *models.CaseState, event casedoc.Event) error {
	payload := new(casedoc.DocumentationRequirementEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	status, err := parseRequirementStatus(payload.Status)
	if err != nil {
		return err
	}

	// Requirements carry no upstream id. The deadline date is the identity,
	// so requirements sharing a deadline collapse into one.
	id := utils.HashStrings(payload.Deadline)

	title := payload.Title
	if title == "" {
		title = constvars.TaskTitleDeliverDocumentation
	}

	requirement := findRequirement(state, id)
	if requirement != nil {
		requirement.Description = payload.Description
	} else {
		requirement = &models.DocumentationRequirement{
			ID:          id,
			Title:       title,
			Description: payload.Description,
			Status:      status,
			Deadline:    s.parseDate(ctx, payload.Deadline),
			CreatedAt:   event.Timestamp,
			PaymentRefs: payload.PaymentReferences,
		}
		state.DocumentationRequirements = append(state.DocumentationRequirements, requirement)
	}

	linked := make(map[string]bool, len(payload.PaymentReferences))
	for _, ref := range payload.PaymentReferences {
		linked[ref] = true
	}

	resolvedAny := false
	for _, c := range state.Cases {
		for _, payment := range c.Payments {
			resolvedAny = s.linkRequirement(payment, requirement, linked) || resolvedAny
		}
	}
	for _, payment := range state.Payments {
		resolvedAny = s.linkRequirement(payment, requirement, linked) || resolvedAny
	}

	if len(payload.PaymentReferences) > 0 && !resolvedAny {
		// The requirement may precede its payments in a noisy upstream
		// ordering. Nothing to link yet is not an error.
		s.Log.Warn("eventService.applyDocumentationRequirement no linked payment found",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.String("requirement_id", id),
		)
	}

	return nil
}

func (s *eventService) linkRequirement(payment *models.Payment, requirement *models.DocumentationRequirement, linked map[string]bool) bool {
	if linked[payment.Reference] {
		attachRequirement(payment, requirement)
		return true
	}
	detachRequirement(payment, requirement.ID)
	return false
}

func findRequirement(state *models.CaseState, id string) *models.DocumentationRequirement {
	for _, requirement := range state.DocumentationRequirements {
		if requirement.ID == id {
			return requirement
		}
	}
	return nil
}

func attachRequirement(payment *models.Payment, requirement *models.DocumentationRequirement) {
	for i, existing := range payment.DocumentationRequirements {
		if existing.ID == requirement.ID {
			payment.DocumentationRequirements[i] = requirement
			return
		}
	}
	payment.DocumentationRequirements = append(payment.DocumentationRequirements, requirement)
}

func detachRequirement(payment *models.Payment, id string) {
	for i, existing := range payment.DocumentationRequirements {
		if existing.ID == id {
			payment.DocumentationRequirements = append(payment.DocumentationRequirements[:i], payment.DocumentationRequirements[i+1:]...)
			return
		}
	}
}
