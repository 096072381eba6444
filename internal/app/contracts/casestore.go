package contracts

import (
	"caseview-service/internal/pkg/casedoc"
	"context"
)

type CaseStoreClient interface {
	GetStoredCase(ctx context.Context, token, caseID string) (*casedoc.StoredCase, error)
	GetAllStoredCases(ctx context.Context, token string) ([]*casedoc.StoredCase, error)
	GetEventLog(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.EventLog, error)
	GetOriginalApplication(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.OriginalApplication, error)
	GetAttachmentManifest(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.AttachmentManifest, error)
}
