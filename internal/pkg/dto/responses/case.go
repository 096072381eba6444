package responses

import "time"

type CaseSummary struct {
	CaseID         string     `json:"case_id"`
	Status         string     `json:"status"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	LastUpdated    time.Time  `json:"last_updated"`
	OfficeName     string     `json:"office_name,omitempty"`
	SourceSystem   string     `json:"source_system,omitempty"`
	IsPaperApplication bool   `json:"is_paper_application"`
}

type CaseStatusResponse struct {
	Status          string        `json:"status"`
	Cases           []CaseStatus  `json:"cases"`
	InterimResponse *LetterLink   `json:"interim_response,omitempty"`
}

type CaseStatus struct {
	Reference string         `json:"reference"`
	Title     string         `json:"title,omitempty"`
	Status    string         `json:"status"`
	Decisions []DecisionInfo `json:"decisions,omitempty"`
}

type DecisionInfo struct {
	ID      string     `json:"id"`
	Outcome string     `json:"outcome,omitempty"`
	FileURL string     `json:"file_url,omitempty"`
	Date    *time.Time `json:"date,omitempty"`
}

type LetterLink struct {
	Received bool   `json:"received"`
	Link     string `json:"link,omitempty"`
}
