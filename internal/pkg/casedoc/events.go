package casedoc

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type EventType string

const (
	EventTypeApplicationStatus        EventType = "APPLICATION_STATUS"
	EventTypeCaseStatus               EventType = "CASE_STATUS"
	EventTypePayment                  EventType = "PAYMENT"
	EventTypeCondition                EventType = "CONDITION"
	EventTypeDocumentationRequirement EventType = "DOCUMENTATION_REQUIREMENT"
	EventTypeDocumentRequested        EventType = "DOCUMENT_REQUESTED"
	EventTypeInterimResponse          EventType = "INTERIM_RESPONSE"
	EventTypeDecisionMade             EventType = "DECISION_MADE"
	EventTypeOfficeAssignment         EventType = "OFFICE_ASSIGNMENT"
	EventTypeFrameDecision            EventType = "FRAME_DECISION"
)

// EventLog is the event-log document fetched from the case store. Events
// arrive with no ordering guarantee.
type EventLog struct {
	Version string  `json:"version"`
	Sender  *Sender `json:"sender"`
	Events  []Event `json:"events"`
}

type Sender struct {
	SystemName    string `json:"systemName"`
	SystemVersion string `json:"systemVersion"`
}

// Event is the envelope shared by every variant. The payload stays raw until
// the engine dispatches on the type discriminant.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Raw       json.RawMessage
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var head struct {
		Type      EventType `json:"type"`
		Timestamp string    `json:"eventTimestamp"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	ts, err := ParseEventTime(head.Timestamp)
	if err != nil {
		return fmt.Errorf("event %s: %w", head.Type, err)
	}
	e.Type = head.Type
	e.Timestamp = ts
	e.Raw = append(e.Raw[:0], data...)
	return nil
}

func (e Event) MarshalJSON() ([]byte, error) {
	return e.Raw, nil
}

type ApplicationStatusEvent struct {
	Status string `json:"status"`
}

type CaseStatusEvent struct {
	CaseReference string `json:"caseReference"`
	Status        string `json:"status"`
	Title         string `json:"title"`
}

type PaymentEvent struct {
	PaymentReference string   `json:"paymentReference"`
	CaseReference    string   `json:"caseReference"`
	Status           string   `json:"status"`
	Amount           *float64 `json:"amount"`
	Description      string   `json:"description"`
	DueDate          string   `json:"dueDate"`
	PaymentDate      string   `json:"paymentDate"`
	PeriodFrom       string   `json:"periodFrom"`
	PeriodTo         string   `json:"periodTo"`
	Payee            string   `json:"payee"`
	OtherPayee       *bool    `json:"otherPayee"`
	AccountNumber    string   `json:"accountNumber"`
	PaymentMethod    string   `json:"paymentMethod"`
}

type ConditionEvent struct {
	ConditionReference string   `json:"conditionReference"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	PaymentReferences  []string `json:"paymentReferences"`
}

type DocumentationRequirementEvent struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Status            string   `json:"status"`
	Deadline          string   `json:"deadline"`
	PaymentReferences []string `json:"paymentReferences"`
}

type DocumentRequestedEvent struct {
	Letter    *FileReference      `json:"letter"`
	Documents []RequestedDocument `json:"documents"`
}

type RequestedDocument struct {
	DocumentType      string `json:"documentType"`
	AdditionalInfo    string `json:"additionalInfo"`
	Deadline          string `json:"deadline"`
	DocumentReference string `json:"documentReference"`
}

type InterimResponseEvent struct {
	Letter *FileReference `json:"letter"`
}

type DecisionMadeEvent struct {
	CaseReference string         `json:"caseReference"`
	Outcome       string         `json:"outcome"`
	DecisionFile  *FileReference `json:"decisionFile"`
}

type OfficeAssignmentEvent struct {
	OfficeID string `json:"officeId"`
}

// FrameDecisionEvent carries no payload the engine acts on.
type FrameDecisionEvent struct{}
