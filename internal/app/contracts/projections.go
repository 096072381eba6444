package contracts

import (
	"caseview-service/internal/pkg/dto/responses"
	"context"
)

type CaseStatusUsecase interface {
	FindAllCases(ctx context.Context, token string) ([]responses.CaseSummary, error)
	GetCaseStatus(ctx context.Context, token, caseID string) (*responses.CaseStatusResponse, error)
}

type TaskUsecase interface {
	GetTasks(ctx context.Context, token, caseID string) ([]responses.TaskGroup, error)
	GetConditions(ctx context.Context, token, caseID string) ([]responses.ConditionResponse, error)
	GetDocumentationRequirements(ctx context.Context, token, caseID string) ([]responses.DocumentationRequirementResponse, error)
}

type PaymentUsecase interface {
	GetCasePayments(ctx context.Context, token, caseID string) ([]responses.CasePayments, error)
	GetPaymentOverview(ctx context.Context, token string) (*responses.PaymentOverview, error)
}

type TimelineUsecase interface {
	GetTimeline(ctx context.Context, token, caseID string) ([]responses.TimelineEntry, error)
}
