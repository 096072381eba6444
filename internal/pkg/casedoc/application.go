package casedoc

// OriginalApplication is the originally submitted application document. Only
// the receiver block is of interest to the engine.
type OriginalApplication struct {
	Receiver *Receiver `json:"receiver"`
}

type Receiver struct {
	OfficeID   string `json:"officeId"`
	OfficeName string `json:"officeName"`
}

const (
	AttachmentStatusRequired = "Required"
	AttachmentStatusUploaded = "Uploaded"
)

// AttachmentManifest lists the attachments the applicant declared when
// submitting the original application.
type AttachmentManifest struct {
	Attachments []Attachment `json:"attachments"`
}

type Attachment struct {
	Type           string `json:"type"`
	AdditionalInfo string `json:"additionalInfo"`
	Status         string `json:"status"`
}
