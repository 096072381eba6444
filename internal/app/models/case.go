package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusSent            ApplicationStatus = "SENT"
	ApplicationStatusReceived        ApplicationStatus = "RECEIVED"
	ApplicationStatusUnderProcessing ApplicationStatus = "UNDER_PROCESSING"
	ApplicationStatusCompleted       ApplicationStatus = "COMPLETED"
	ApplicationStatusNotProcessed    ApplicationStatus = "NOT_PROCESSED"
)

type CaseStatus string

const (
	CaseStatusUnderProcessing CaseStatus = "UNDER_PROCESSING"
	CaseStatusNoInsight       CaseStatus = "NO_INSIGHT"
	CaseStatusCompleted       CaseStatus = "COMPLETED"
	CaseStatusNotProcessed    CaseStatus = "NOT_PROCESSED"
	CaseStatusMisregistered   CaseStatus = "MISREGISTERED"
)

type PaymentStatus string

const (
	PaymentStatusPlanned  PaymentStatus = "PLANNED"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusStopped  PaymentStatus = "STOPPED"
	PaymentStatusAnnulled PaymentStatus = "ANNULLED"
)

type RequirementStatus string

const (
	RequirementStatusRelevant     RequirementStatus = "RELEVANT"
	RequirementStatusAnnulled     RequirementStatus = "ANNULLED"
	RequirementStatusFulfilled    RequirementStatus = "FULFILLED"
	RequirementStatusNotFulfilled RequirementStatus = "NOT_FULFILLED"
)

type DecisionOutcome string

const (
	DecisionOutcomeGranted          DecisionOutcome = "GRANTED"
	DecisionOutcomePartiallyGranted DecisionOutcome = "PARTIALLY_GRANTED"
	DecisionOutcomeDenied           DecisionOutcome = "DENIED"
	DecisionOutcomeRejected         DecisionOutcome = "REJECTED"
)

// CaseState is the accumulator the event engine folds into. It is built fresh
// for every request and never persisted.
type CaseState struct {
	CaseID           string
	Reference        string
	Status           ApplicationStatus
	SourceSystem     *SourceSystem
	SubmissionOffice *SubmissionOffice
	AssignedOffice   string
	InterimResponse  InterimResponse
	SubmittedAt      *time.Time
	Cases            []*Case
	// Payments holds payments whose event carried no matching case
	// reference (the "default" bucket).
	Payments                  []*Payment
	Conditions                []*Condition
	DocumentationRequirements []*DocumentationRequirement
	Tasks                     []*Task
	History                   []HistoryEntry
}

func NewCaseState() *CaseState {
	return &CaseState{
		Status:                    ApplicationStatusSent,
		Cases:                     []*Case{},
		Payments:                  []*Payment{},
		Conditions:                []*Condition{},
		DocumentationRequirements: []*DocumentationRequirement{},
		Tasks:                     []*Task{},
		History:                   []HistoryEntry{},
	}
}

type SourceSystem struct {
	Name    string
	Version string
}

type SubmissionOffice struct {
	ID   string
	Name string
}

type InterimResponse struct {
	Received bool
	Link     string
}

type Case struct {
	Reference string
	Status    CaseStatus
	Title     string
	Decisions []Decision
	Payments  []*Payment
}

type Decision struct {
	ID      string
	Outcome DecisionOutcome
	FileURL string
	Date    *time.Time
}

type Payment struct {
	Reference     string
	Status        PaymentStatus
	Amount        float64
	Description   string
	DueDate       *time.Time
	PaymentDate   *time.Time
	StoppedDate   *time.Time
	PeriodFrom    *time.Time
	PeriodTo      *time.Time
	Payee         string
	OtherPayee    bool
	AccountNumber string
	PaymentMethod string
	// Conditions and DocumentationRequirements share object identity with
	// the flat lists on CaseState.
	Conditions                []*Condition
	DocumentationRequirements []*DocumentationRequirement
	EventDate                 time.Time
}

type Condition struct {
	Reference     string
	Title         string
	Description   string
	Status        RequirementStatus
	CreatedAt     time.Time
	LastChangedAt time.Time
	// PaymentRefs is the linked-payment set supplied by the latest event.
	PaymentRefs []string
}

type DocumentationRequirement struct {
	// ID is derived from the deadline date; requirements sharing a deadline
	// collapse to the same id.
	ID          string
	Title       string
	Description string
	Status      RequirementStatus
	Deadline    *time.Time
	CreatedAt   time.Time
	PaymentRefs []string
}

type Task struct {
	ID         string
	Title      string
	ExtraInfo  string
	Deadline   *time.Time
	CreatedAt  time.Time
	FromPortal bool
}

type HistoryEntry struct {
	Title     string
	Timestamp time.Time
	Link      *Link
}

type Link struct {
	Text string
	URL  string
}
