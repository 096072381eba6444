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

func (s *eventService) applyCondition(ctx context.Context, state *models.CaseState, event casedoc.Event) error {
	payload := new(casedoc.ConditionEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	status, err := parseRequirementStatus(payload.Status)
	if err != nil {
		return err
	}

	condition := findCondition(state, payload.ConditionReference)
	if condition != nil {
		condition.Description = payload.Description
		condition.LastChangedAt = event.Timestamp
		condition.PaymentRefs = payload.PaymentReferences
	} else {
		condition = &models.Condition{
			Reference:     payload.ConditionReference,
			Title:         payload.Title,
			Description:   payload.Description,
			Status:        status,
			CreatedAt:     event.Timestamp,
			LastChangedAt: event.Timestamp,
			PaymentRefs:   payload.PaymentReferences,
		}
		state.Conditions = append(state.Conditions, condition)
	}

	linked := make(map[string]bool, len(payload.PaymentReferences))
	for _, ref := range payload.PaymentReferences {
		linked[ref] = true
	}

	resolved := make(map[string]bool, len(linked))
	for _, payment := range allPayments(state) {
		if linked[payment.Reference] {
			resolved[payment.Reference] = true
			attachCondition(payment, condition)
		} else {
			detachCondition(payment, condition.Reference)
		}
	}

	for _, ref := range payload.PaymentReferences {
		if !resolved[ref] {
			s.Log.Warn("eventService.applyCondition linked payment not found",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingCaseIDKey, state.CaseID),
				zap.String("condition_reference", payload.ConditionReference),
				zap.String("payment_reference", ref),
			)
		}
	}

	return nil
}

// allPayments walks payments nested in cases first, then the flat bucket.
func allPayments(state *models.CaseState) []*models.Payment {
	var payments []*models.Payment
	for _, c := range state.Cases {
		payments = append(payments, c.Payments...)
	}
	payments = append(payments, state.Payments...)
	return payments
}

func findCondition(state *models.CaseState, reference string) *models.Condition {
	for _, condition := range state.Conditions {
		if condition.Reference == reference {
			return condition
		}
	}
	return nil
}

// attachCondition keeps shared identity: the payment holds the same
// Condition pointer as the flat list.
func attachCondition(payment *models.Payment, condition *models.Condition) {
	for i, existing := range payment.Conditions {
		if existing.Reference == condition.Reference {
			payment.Conditions[i] = condition
			return
		}
	}
	payment.Conditions = append(payment.Conditions, condition)
}

// detachCondition prunes a condition the latest event no longer scopes to
// this payment. The condition itself stays in the flat list.
func detachCondition(payment *models.Payment, reference string) {
	for i, existing := range payment.Conditions {
		if existing.Reference == reference {
			payment.Conditions = append(payment.Conditions[:i], payment.Conditions[i+1:]...)
			return
		}
	}
}

func parseRequirementStatus(value string) (models.RequirementStatus, error) {
	switch models.RequirementStatus(value) {
	case models.RequirementStatusRelevant,
		models.RequirementStatusAnnulled,
		models.RequirementStatusFulfilled,
		models.RequirementStatusNotFulfilled:
		return models.RequirementStatus(value), nil
	default:
		return "", exceptions.ErrUnknownEnumValue("requirementStatus", value)
	}
}
