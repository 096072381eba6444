package contracts

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"context"
)

// CaseStateBuilder folds a stored case into the state the applicant sees.
type CaseStateBuilder interface {
	BuildCaseState(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*models.CaseState, error)
	BuildPaymentState(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*models.CaseState, error)
}
