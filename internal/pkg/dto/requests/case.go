package requests

// CasePath carries the path parameters of the per-case endpoints.
type CasePath struct {
	CaseID string `validate:"required,max=100"`
}
