package contracts

import "context"

type OfficeClient interface {
	GetOfficeName(ctx context.Context, officeID string) (string, error)
}
