package events

import (
	"caseview-service/internal/pkg/casedoc"
	"fmt"
)

// DocumentURLResolver turns the file references events carry into URLs the
// frontend can fetch. Resolution never reaches into the fold as an error;
// callers drop the link on failure.
type DocumentURLResolver struct {
	baseURL string
}

func NewDocumentURLResolver(baseURL string) *DocumentURLResolver {
	return &DocumentURLResolver{baseURL: baseURL}
}

func (r *DocumentURLResolver) ResolveFileURL(caseID string, ref *casedoc.FileReference) (string, error) {
	if ref == nil {
		return "", fmt.Errorf("no file reference")
	}
	switch ref.Type {
	case casedoc.FileReferenceDocumentArchive:
		return fmt.Sprintf("%s/%s/dokumenter/%s", r.baseURL, caseID, ref.ID), nil
	case casedoc.FileReferenceDispatchArchive:
		return fmt.Sprintf("%s/%s/forsendelser/%s", r.baseURL, caseID, ref.ID), nil
	default:
		return "", fmt.Errorf("unknown file reference type %q", ref.Type)
	}
}

func (r *DocumentURLResolver) ApplicationURL(caseID, documentID string) string {
	return fmt.Sprintf("%s/%s/dokumenter/%s", r.baseURL, caseID, documentID)
}
