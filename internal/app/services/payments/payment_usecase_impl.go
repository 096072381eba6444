package payments

import (
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/dto/responses"
	"caseview-service/internal/pkg/utils"
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// paymentOverviewWindow bounds how far back paid payments are shown.
const paymentOverviewWindow = 15

type paymentUsecase struct {
	CaseStoreClient  contracts.CaseStoreClient
	CaseStateBuilder contracts.CaseStateBuilder
	Log              *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	caseStoreClient contracts.CaseStoreClient,
	caseStateBuilder contracts.CaseStateBuilder,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			CaseStoreClient:  caseStoreClient,
			CaseStateBuilder: caseStateBuilder,
			Log:              logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) GetCasePayments(ctx context.Context, token, caseID string) ([]responses.CasePayments, error) {
	uc.Log.Info("paymentUsecase.GetCasePayments called",
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

	result := make([]responses.CasePayments, 0, len(state.Cases)+1)
	for _, c := range state.Cases {
		if len(c.Payments) == 0 {
			continue
		}
		result = append(result, responses.CasePayments{
			CaseTitle: c.Title,
			Months:    groupByMonth(c.Payments),
		})
	}
	if len(state.Payments) > 0 {
		result = append(result, responses.CasePayments{
			Months: groupByMonth(state.Payments),
		})
	}

	return result, nil
}

func (uc *paymentUsecase) GetPaymentOverview(ctx context.Context, token string) (*responses.PaymentOverview, error) {
	uc.Log.Info("paymentUsecase.GetPaymentOverview called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)

	storedCases, err := uc.CaseStoreClient.GetAllStoredCases(ctx, token)
	if err != nil {
		return nil, err
	}

	overview := &responses.PaymentOverview{
		Upcoming: []responses.Payment{},
		Paid:     []responses.Payment{},
	}
	cutoff := time.Now().AddDate(0, -paymentOverviewWindow, 0)

	for _, storedCase := range storedCases {
		state, err := uc.CaseStateBuilder.BuildPaymentState(ctx, token, storedCase)
		if err != nil {
			uc.Log.Error("paymentUsecase.GetPaymentOverview error folding payments",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingCaseIDKey, storedCase.CaseID),
				zap.Error(err),
			)
			return nil, err
		}

		for _, c := range state.Cases {
			collectOverview(overview, c.Payments, c.Title, cutoff)
		}
		collectOverview(overview, state.Payments, "", cutoff)
	}

	sort.SliceStable(overview.Upcoming, func(i, j int) bool {
		return paymentSortTime(overview.Upcoming[i]).Before(paymentSortTime(overview.Upcoming[j]))
	})
	sort.SliceStable(overview.Paid, func(i, j int) bool {
		return paymentSortTime(overview.Paid[i]).After(paymentSortTime(overview.Paid[j]))
	})

	return overview, nil
}

func collectOverview(overview *responses.PaymentOverview, payments []*models.Payment, caseTitle string, cutoff time.Time) {
	if caseTitle == "" {
		caseTitle = constvars.DefaultCaseTitle
	}
	for _, payment := range payments {
		converted := convertPayment(payment)
		converted.CaseTitle = caseTitle

		switch payment.Status {
		case models.PaymentStatusPlanned:
			overview.Upcoming = append(overview.Upcoming, converted)
		case models.PaymentStatusPaid:
			if paidAt(payment).Before(cutoff) {
				continue
			}
			overview.Paid = append(overview.Paid, converted)
		}
	}
}

// groupByMonth buckets payments by the month of their effective date,
// newest month first.
func groupByMonth(payments []*models.Payment) []responses.PaymentMonth {
	grouped := make(map[string][]responses.Payment)
	totals := make(map[string]float64)
	keys := make([]string, 0)

	for _, payment := range payments {
		key := effectiveDate(payment).Format("2006-01")
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], convertPayment(payment))
		totals[key] += payment.Amount
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	months := make([]responses.PaymentMonth, 0, len(keys))
	for _, key := range keys {
		months = append(months, responses.PaymentMonth{
			Month:    key,
			Payments: grouped[key],
			Total:    totals[key],
		})
	}
	return months
}

// effectiveDate is the date a payment is presented under: the actual payment
// date when it exists, else the due date, else the event's own timestamp.
func effectiveDate(payment *models.Payment) time.Time {
	if payment.PaymentDate != nil {
		return *payment.PaymentDate
	}
	if payment.DueDate != nil {
		return *payment.DueDate
	}
	return payment.EventDate
}

func paidAt(payment *models.Payment) time.Time {
	if payment.PaymentDate != nil {
		return *payment.PaymentDate
	}
	return payment.EventDate
}

func paymentSortTime(payment responses.Payment) time.Time {
	if payment.PaymentDate != nil {
		return *payment.PaymentDate
	}
	if payment.DueDate != nil {
		return *payment.DueDate
	}
	return time.Time{}
}

func convertPayment(payment *models.Payment) responses.Payment {
	return responses.Payment{
		Reference:     payment.Reference,
		Status:        string(payment.Status),
		Amount:        payment.Amount,
		Description:   payment.Description,
		DueDate:       payment.DueDate,
		PaymentDate:   payment.PaymentDate,
		StoppedDate:   payment.StoppedDate,
		PeriodFrom:    payment.PeriodFrom,
		PeriodTo:      payment.PeriodTo,
		Payee:         payment.Payee,
		AccountNumber: payment.AccountNumber,
		PaymentMethod: payment.PaymentMethod,
	}
}
