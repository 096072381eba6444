package casedoc

// StoredCase is the case resource as returned by the case store. It points at
// the documents (event log, original application, attachment manifest) that
// are fetched separately.
type StoredCase struct {
	CaseID              string                   `json:"caseId"`
	ApplicantID         string                   `json:"applicantId"`
	MunicipalityNumber  string                   `json:"municipalityNumber"`
	OriginalApplication *OriginalApplicationInfo `json:"originalApplication"`
	EventLogInfo        *EventLogInfo            `json:"eventLog"`
	LastUpdated         int64                    `json:"lastUpdated"`
}

// OriginalApplicationInfo is nil for paper applications.
type OriginalApplicationInfo struct {
	ExternalReference     string `json:"externalReference"`
	SubmittedAt           int64  `json:"submittedAt"`
	ApplicationDocumentID string `json:"applicationDocumentId"`
	MetadataID            string `json:"metadataId"`
	AttachmentManifestID  string `json:"attachmentManifestId"`
}

type EventLogInfo struct {
	MetadataID  string `json:"metadataId"`
	LastUpdated int64  `json:"lastUpdated"`
}

const (
	FileReferenceDocumentArchive = "documentArchive"
	FileReferenceDispatchArchive = "dispatchArchive"
)

type FileReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
