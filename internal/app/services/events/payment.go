package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

func (s *eventService) applyPayment(ctx context.Context, state *models.CaseState, event casedoc.Event) error {
	payload := new(casedoc.PaymentEvent)
	err := s.decode(event, payload)
	if err != nil {
		return err
	}

	status := models.PaymentStatusPlanned
	if payload.Status != "" {
		status, err = parsePaymentStatus(payload.Status)
		if err != nil {
			return err
		}
	}

	payment := &models.Payment{
		Reference:                 payload.PaymentReference,
		Status:                    status,
		Description:               payload.Description,
		DueDate:                   s.parseDate(ctx, payload.DueDate),
		PaymentDate:               s.parseDate(ctx, payload.PaymentDate),
		PeriodFrom:                s.parseDate(ctx, payload.PeriodFrom),
		PeriodTo:                  s.parseDate(ctx, payload.PeriodTo),
		Payee:                     payload.Payee,
		PaymentMethod:             payload.PaymentMethod,
		Conditions:                []*models.Condition{},
		DocumentationRequirements: []*models.DocumentationRequirement{},
		EventDate:                 event.Timestamp,
	}
	if payload.Amount != nil {
		payment.Amount = *payload.Amount
	}

	// The account number is visible only when the payee is explicitly the
	// applicant. An absent flag is treated as a third-party payee.
	payment.OtherPayee = payload.OtherPayee == nil || *payload.OtherPayee
	if !payment.OtherPayee {
		payment.AccountNumber = payload.AccountNumber
	}

	home := resolvePaymentHome(state, payload.CaseReference)
	replaced := replacePayment(home, payment)

	if status == models.PaymentStatusStopped {
		stoppedAt := event.Timestamp
		payment.StoppedDate = &stoppedAt
	} else if replaced != nil && replaced.StoppedDate != nil {
		payment.StoppedDate = replaced.StoppedDate
	}

	return nil
}

// resolvePaymentHome decides the single list a payment lives in: the case
// matching the event's reference, else a case literally named "default",
// else the flat bucket on the state.
func resolvePaymentHome(state *models.CaseState, caseReference string) *[]*models.Payment {
	if c := findCase(state, caseReference); c != nil {
		return &c.Payments
	}
	if c := findCase(state, constvars.DefaultCaseReference); c != nil {
		return &c.Payments
	}
	return &state.Payments
}

// replacePayment swaps out any payment with the same reference and returns
// the replaced instance, or appends when the reference is new.
func replacePayment(home *[]*models.Payment, payment *models.Payment) *models.Payment {
	for i, existing := range *home {
		if existing.Reference == payment.Reference {
			(*home)[i] = payment
			return existing
		}
	}
	*home = append(*home, payment)
	return nil
}

func (s *eventService) parseDate(ctx context.Context, value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := casedoc.ParseEventDate(value)
	if err != nil {
		s.Log.Warn("eventService.parseDate discarding unparseable date",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String("value", value),
		)
		return nil
	}
	return &parsed
}

func parsePaymentStatus(value string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(value) {
	case models.PaymentStatusPlanned,
		models.PaymentStatusPaid,
		models.PaymentStatusStopped,
		models.PaymentStatusAnnulled:
		return models.PaymentStatus(value), nil
	default:
		return "", exceptions.ErrUnknownEnumValue("paymentStatus", value)
	}
}
