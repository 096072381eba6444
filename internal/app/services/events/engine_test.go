package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCaseStoreClient struct {
	eventLog    *casedoc.EventLog
	application *casedoc.OriginalApplication
	manifest    *casedoc.AttachmentManifest
}

func (s *stubCaseStoreClient) GetStoredCase(ctx context.Context, token, caseID string) (*casedoc.StoredCase, error) {
	return nil, nil
}

func (s *stubCaseStoreClient) GetAllStoredCases(ctx context.Context, token string) ([]*casedoc.StoredCase, error) {
	return nil, nil
}

func (s *stubCaseStoreClient) GetEventLog(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.EventLog, error) {
	return s.eventLog, nil
}

func (s *stubCaseStoreClient) GetOriginalApplication(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.OriginalApplication, error) {
	return s.application, nil
}

func (s *stubCaseStoreClient) GetAttachmentManifest(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.AttachmentManifest, error) {
	return s.manifest, nil
}

type stubOfficeClient struct {
	names map[string]string
	err   error
}

func (s *stubOfficeClient) GetOfficeName(ctx context.Context, officeID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name, ok := s.names[officeID]
	if !ok {
		return "", fmt.Errorf("office %s not found", officeID)
	}
	return name, nil
}

func newTestService(store *stubCaseStoreClient, offices *stubOfficeClient) *eventService {
	if offices == nil {
		offices = &stubOfficeClient{}
	}
	return &eventService{
		CaseStoreClient: store,
		OfficeClient:    offices,
		URLResolver:     NewDocumentURLResolver("https://store.example/soknader"),
		Log:             zap.NewNop(),
	}
}

func mustEvent(t *testing.T, raw string) casedoc.Event {
	t.Helper()
	var event casedoc.Event
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	return event
}

func paperCase() *casedoc.StoredCase {
	return &casedoc.StoredCase{
		CaseID:       "case-1",
		EventLogInfo: &casedoc.EventLogInfo{MetadataID: "meta-1"},
	}
}

func digitalCase(submittedAt time.Time) *casedoc.StoredCase {
	return &casedoc.StoredCase{
		CaseID: "case-1",
		OriginalApplication: &casedoc.OriginalApplicationInfo{
			ExternalReference:     "ext-1",
			SubmittedAt:           submittedAt.UnixMilli(),
			ApplicationDocumentID: "app-doc-1",
			AttachmentManifestID:  "manifest-1",
		},
		EventLogInfo: &casedoc.EventLogInfo{MetadataID: "meta-1"},
	}
}

func buildState(t *testing.T, storedCase *casedoc.StoredCase, store *stubCaseStoreClient) *models.CaseState {
	t.Helper()
	state, err := newTestService(store, nil).BuildCaseState(context.Background(), "token", storedCase)
	require.NoError(t, err)
	return state
}

func TestBuildCaseStateEmptyLog(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{
		eventLog: &casedoc.EventLog{Events: []casedoc.Event{}},
	})

	assert.Equal(t, models.ApplicationStatusSent, state.Status, "an empty log yields the all-default state")
	assert.Empty(t, state.Cases)
	assert.Empty(t, state.Tasks)
	assert.Empty(t, state.History)
}

func TestBuildCaseStatePurity(t *testing.T) {
	events := []casedoc.Event{
		mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","status":"RECEIVED"}`),
		mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-02T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING","title":"Rent"}`),
		mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1","caseReference":"S1","status":"PLANNED","amount":1200.5}`),
		mustEvent(t, `{"type":"CONDITION","eventTimestamp":"2026-05-03T10:00:00.000Z","conditionReference":"V1","title":"Attend course","status":"RELEVANT","paymentReferences":["U1"]}`),
	}
	store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: events}}

	first := buildState(t, paperCase(), store)
	second := buildState(t, paperCase(), store)

	assert.Equal(t, first, second, "folding the same log twice must yield identical state")
}

func TestOrderIndependenceUpToTieBreak(t *testing.T) {
	payment := `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1","status":"PLANNED"}`
	condition := `{"type":"CONDITION","eventTimestamp":"2026-05-03T10:00:00.000Z","conditionReference":"V1","status":"RELEVANT","paymentReferences":["U1"]}`

	forward := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, payment), mustEvent(t, condition),
	}}})
	reversed := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, condition), mustEvent(t, payment),
	}}})

	assert.Equal(t, forward, reversed, "same-timestamp permutations must fold identically")
}

func TestTieBreakPaymentBeforeCondition(t *testing.T) {
	condition := mustEvent(t, `{"type":"CONDITION","eventTimestamp":"2026-05-03T10:00:00.000Z","conditionReference":"V1","status":"RELEVANT","paymentReferences":["U1"]}`)
	payment := mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1","status":"PLANNED"}`)

	// Condition arrives first in the raw array; the payment must still be
	// there before the condition links to it.
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{condition, payment}}})

	require.Len(t, state.Payments, 1)
	require.Len(t, state.Payments[0].Conditions, 1)
	assert.Equal(t, "V1", state.Payments[0].Conditions[0].Reference, "condition must end up linked to the payment")
}

func TestTieBreakKeepsCaseStatusBeforePayment(t *testing.T) {
	caseStatus := mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-03T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING"}`)
	payment := mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1","caseReference":"S1","status":"PLANNED"}`)

	// Same timestamp, case creation first in the raw array. Only condition
	// and documentation-requirement events are demoted on ties, so the case
	// must exist before the payment resolves its home.
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{caseStatus, payment}}})

	require.Len(t, state.Cases, 1)
	assert.Len(t, state.Cases[0].Payments, 1, "payment must stay homed in case S1")
	assert.Empty(t, state.Payments)
}

func TestUnknownEventTypeAbortsFold(t *testing.T) {
	events := []casedoc.Event{
		mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","status":"RECEIVED"}`),
		mustEvent(t, `{"type":"SOMETHING_NEW","eventTimestamp":"2026-05-02T10:00:00.000Z"}`),
	}
	store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: events}}

	state, err := newTestService(store, nil).BuildCaseState(context.Background(), "token", paperCase())

	assert.Error(t, err, "an unknown variant signals a schema change and must abort")
	assert.Nil(t, state, "no partial state may escape")
}

func TestUnknownStatusValueAbortsFold(t *testing.T) {
	store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","status":"ARCHIVED"}`),
	}}}

	_, err := newTestService(store, nil).BuildCaseState(context.Background(), "token", paperCase())

	assert.Error(t, err)
}

func TestReceivedNarrativeUsesSubmissionOffice(t *testing.T) {
	received := `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","status":"RECEIVED"}`

	t.Run("Known Office", func(t *testing.T) {
		submitted := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)
		store := &stubCaseStoreClient{
			eventLog:    &casedoc.EventLog{Events: []casedoc.Event{mustEvent(t, received)}},
			application: &casedoc.OriginalApplication{Receiver: &casedoc.Receiver{OfficeID: "0301", OfficeName: "Oslo kommune"}},
		}

		state := buildState(t, digitalCase(submitted), store)

		require.NotEmpty(t, state.History)
		last := state.History[len(state.History)-1]
		assert.Equal(t, "Your application has been received at Oslo.", last.Title, "the ' kommune' suffix must be stripped")
	})

	t.Run("Unknown Office", func(t *testing.T) {
		store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{mustEvent(t, received)}}}

		state := buildState(t, paperCase(), store)

		require.Len(t, state.History, 1)
		assert.Equal(t, "Your application has been received.", state.History[0].Title)
	})
}

func TestSubmissionSeeding(t *testing.T) {
	submitted := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)
	store := &stubCaseStoreClient{
		eventLog:    &casedoc.EventLog{Sender: &casedoc.Sender{SystemName: "Socio", SystemVersion: "2.1"}, Events: []casedoc.Event{}},
		application: &casedoc.OriginalApplication{Receiver: &casedoc.Receiver{OfficeID: "0301", OfficeName: "Oslo kommune"}},
	}

	state := buildState(t, digitalCase(submitted), store)

	assert.Equal(t, "ext-1", state.Reference)
	require.NotNil(t, state.SubmittedAt)
	assert.True(t, state.SubmittedAt.Equal(submitted))
	require.NotNil(t, state.SubmissionOffice)
	assert.Equal(t, "Oslo", state.SubmissionOffice.Name)
	require.NotNil(t, state.SourceSystem)
	assert.Equal(t, "Socio", state.SourceSystem.Name)

	require.Len(t, state.History, 1)
	assert.Equal(t, "Your application and attachments have been sent to Oslo.", state.History[0].Title)
	require.NotNil(t, state.History[0].Link)
	assert.Equal(t, "https://store.example/soknader/case-1/dokumenter/app-doc-1", state.History[0].Link.URL)
}

func TestPaymentHomeResolution(t *testing.T) {
	t.Run("Case Match", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING"}`),
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","paymentReference":"U1","caseReference":"S1"}`),
		}}})

		require.Len(t, state.Cases, 1)
		assert.Len(t, state.Cases[0].Payments, 1)
		assert.Empty(t, state.Payments, "a payment has exactly one home")
	})

	t.Run("Default Case Fallback", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","caseReference":"default","status":"UNDER_PROCESSING"}`),
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","paymentReference":"U1","caseReference":"S9"}`),
		}}})

		require.Len(t, state.Cases, 1)
		assert.Len(t, state.Cases[0].Payments, 1, "an unmatched case reference falls back to the default case")
		assert.Empty(t, state.Payments)
	})

	t.Run("Flat Bucket Fallback", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","paymentReference":"U1","caseReference":"S9"}`),
		}}})

		assert.Len(t, state.Payments, 1)
	})
}

func TestPaymentReplaceSemantics(t *testing.T) {
	t.Run("Stopped Date Carried Over", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U1","status":"STOPPED"}`),
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","paymentReference":"U1","status":"PLANNED"}`),
		}}})

		require.Len(t, state.Payments, 1)
		payment := state.Payments[0]
		assert.Equal(t, models.PaymentStatusPlanned, payment.Status)
		require.NotNil(t, payment.StoppedDate, "the stop date survives the replace")
		assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), payment.StoppedDate.UTC())
	})

	t.Run("Links Reset On Replace", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U1"}`),
			mustEvent(t, `{"type":"CONDITION","eventTimestamp":"2026-05-02T10:00:00.000Z","conditionReference":"V1","status":"RELEVANT","paymentReferences":["U1"]}`),
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1"}`),
		}}})

		require.Len(t, state.Payments, 1)
		assert.Empty(t, state.Payments[0].Conditions, "a replaced payment starts with empty links")
		assert.Len(t, state.Conditions, 1, "the flat condition list is untouched")
	})

	t.Run("Account Number Suppressed For Third Party", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U1","otherPayee":true,"accountNumber":"12345678901"}`),
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U2","accountNumber":"12345678901"}`),
			mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U3","otherPayee":false,"accountNumber":"12345678901"}`),
		}}})

		require.Len(t, state.Payments, 3)
		assert.Empty(t, state.Payments[0].AccountNumber, "explicit third party hides the account")
		assert.Empty(t, state.Payments[1].AccountNumber, "absent flag hides the account")
		assert.Equal(t, "12345678901", state.Payments[2].AccountNumber)
	})
}

func TestConditionPruning(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U1"}`),
		mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","paymentReference":"U2"}`),
		mustEvent(t, `{"type":"CONDITION","eventTimestamp":"2026-05-02T10:00:00.000Z","conditionReference":"V1","status":"RELEVANT","paymentReferences":["U1","U2"]}`),
		mustEvent(t, `{"type":"CONDITION","eventTimestamp":"2026-05-03T10:00:00.000Z","conditionReference":"V1","status":"RELEVANT","paymentReferences":["U2"]}`),
	}}})

	require.Len(t, state.Payments, 2)
	assert.Empty(t, state.Payments[0].Conditions, "the condition was rescoped away from U1")
	assert.Len(t, state.Payments[1].Conditions, 1)
	assert.Len(t, state.Conditions, 1, "the condition itself stays in the flat list")
}

func TestDocumentationRequirementDeadlineIdentity(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"DOCUMENTATION_REQUIREMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","title":"Pay slips","status":"RELEVANT","deadline":"2026-06-01"}`),
		mustEvent(t, `{"type":"DOCUMENTATION_REQUIREMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","title":"Bank statement","status":"RELEVANT","deadline":"2026-06-01"}`),
		mustEvent(t, `{"type":"DOCUMENTATION_REQUIREMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","title":"Contract","status":"RELEVANT","deadline":"2026-07-01"}`),
	}}})

	assert.Len(t, state.DocumentationRequirements, 2, "requirements sharing a deadline collapse to one id")
}

func TestDocumentRequestedReplacesTasks(t *testing.T) {
	t.Run("Replacement", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-01T10:00:00.000Z","letter":{"type":"documentArchive","id":"L1"},"documents":[{"documentType":"Pay slips","deadline":"2026-06-01"},{"documentType":"Lease"}]}`),
			mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-05T10:00:00.000Z","letter":{"type":"documentArchive","id":"L2"},"documents":[{"documentType":"Lease"}]}`),
		}}})

		require.Len(t, state.Tasks, 1, "the task list is replaced, never merged")
		assert.Equal(t, "Lease", state.Tasks[0].Title)
		assert.True(t, state.Tasks[0].FromPortal)

		require.Len(t, state.History, 2)
		assert.Equal(t, "We need more information for your application.", state.History[0].Title)
		require.NotNil(t, state.History[0].Link)
		assert.Equal(t, "https://store.example/soknader/case-1/dokumenter/L1", state.History[0].Link.URL)
	})

	t.Run("Empty Transition Narrative", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-01T10:00:00.000Z","documents":[{"documentType":"Pay slips"}]}`),
			mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-05T10:00:00.000Z","documents":[]}`),
		}}})

		assert.Empty(t, state.Tasks)
		require.Len(t, state.History, 2)
		assert.Equal(t, "We have reviewed your information and will let you know if we need anything more from you.", state.History[1].Title)
	})

	t.Run("No Transition Narrative When Terminal", func(t *testing.T) {
		state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-01T10:00:00.000Z","documents":[{"documentType":"Pay slips"}]}`),
			mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-02T10:00:00.000Z","status":"COMPLETED"}`),
			mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-05T10:00:00.000Z","documents":[]}`),
		}}})

		assert.Empty(t, state.Tasks)
		require.Len(t, state.History, 2, "no narrative for clearing tasks on a closed application")
	})
}

func TestInterimResponse(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"INTERIM_RESPONSE","eventTimestamp":"2026-05-01T10:00:00.000Z","letter":{"type":"dispatchArchive","id":"F1"}}`),
	}}})

	assert.True(t, state.InterimResponse.Received)
	assert.Equal(t, "https://store.example/soknader/case-1/forsendelser/F1", state.InterimResponse.Link)
	require.Len(t, state.History, 1)
	assert.Equal(t, "You have received a letter about the expected processing time for your application.", state.History[0].Title)
}

func TestDecisionMade(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING"}`),
		mustEvent(t, `{"type":"DECISION_MADE","eventTimestamp":"2026-05-10T10:00:00.000Z","caseReference":"S1","outcome":"GRANTED","decisionFile":{"type":"documentArchive","id":"D1"}}`),
	}}})

	require.Len(t, state.Cases, 1)
	require.Len(t, state.Cases[0].Decisions, 1)
	decision := state.Cases[0].Decisions[0]
	assert.Equal(t, models.DecisionOutcomeGranted, decision.Outcome)
	assert.Equal(t, "https://store.example/soknader/case-1/dokumenter/D1", decision.FileURL)
}

func TestDecisionMadeCreatesMissingCase(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"DECISION_MADE","eventTimestamp":"2026-05-10T10:00:00.000Z","caseReference":"S9","outcome":"DENIED"}`),
	}}})

	require.Len(t, state.Cases, 1)
	assert.Equal(t, "S9", state.Cases[0].Reference)
	assert.Len(t, state.Cases[0].Decisions, 1)
}

func TestOfficeAssignment(t *testing.T) {
	t.Run("Narrative With Resolved Name", func(t *testing.T) {
		store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"OFFICE_ASSIGNMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","officeId":"1001"}`),
			mustEvent(t, `{"type":"OFFICE_ASSIGNMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","officeId":"1002"}`),
		}}}
		offices := &stubOfficeClient{names: map[string]string{"1001": "Sagene", "1002": "Frogner"}}

		state, err := newTestService(store, offices).BuildCaseState(context.Background(), "token", paperCase())
		require.NoError(t, err)

		assert.Equal(t, "1002", state.AssignedOffice)
		require.Len(t, state.History, 2)
		assert.Equal(t, "Your application has been received at Sagene.", state.History[0].Title, "a paper application's first assignment reads as a receipt")
		assert.Equal(t, "Your application has been forwarded to Frogner.", state.History[1].Title)
	})

	t.Run("Lookup Failure Falls Back", func(t *testing.T) {
		store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
			mustEvent(t, `{"type":"OFFICE_ASSIGNMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","officeId":"1001"}`),
			mustEvent(t, `{"type":"OFFICE_ASSIGNMENT","eventTimestamp":"2026-05-02T10:00:00.000Z","officeId":"1002"}`),
		}}}
		offices := &stubOfficeClient{err: fmt.Errorf("registry down")}

		state, err := newTestService(store, offices).BuildCaseState(context.Background(), "token", paperCase())
		require.NoError(t, err, "a lookup failure never fails the fold")

		require.Len(t, state.History, 2)
		assert.Equal(t, "Your application has been forwarded to another social services office.", state.History[1].Title)
	})

	t.Run("No-Op For Known Office", func(t *testing.T) {
		submitted := time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)
		store := &stubCaseStoreClient{
			eventLog: &casedoc.EventLog{Events: []casedoc.Event{
				mustEvent(t, `{"type":"OFFICE_ASSIGNMENT","eventTimestamp":"2026-05-01T10:00:00.000Z","officeId":"0301"}`),
			}},
			application: &casedoc.OriginalApplication{Receiver: &casedoc.Receiver{OfficeID: "0301", OfficeName: "Oslo kommune"}},
		}

		state := buildState(t, digitalCase(submitted), store)

		assert.Empty(t, state.AssignedOffice)
		assert.Len(t, state.History, 1, "only the submission entry, no forwarding narrative")
	})
}

func TestCompletedOverrideWithActiveCases(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING"}`),
		mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-02T10:00:00.000Z","status":"COMPLETED"}`),
	}}})

	assert.Equal(t, models.ApplicationStatusUnderProcessing, state.Status, "an open case without decisions keeps the application under processing")
}

func TestEndToEndFold(t *testing.T) {
	state := buildState(t, paperCase(), &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","status":"RECEIVED"}`),
		mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-02T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING","title":"Rent"}`),
		mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1","caseReference":"S1","amount":900}`),
		mustEvent(t, `{"type":"CONDITION","eventTimestamp":"2026-05-03T10:00:00.000Z","conditionReference":"V1","status":"RELEVANT","paymentReferences":["U1"]}`),
	}}})

	assert.Equal(t, models.ApplicationStatusReceived, state.Status)
	require.Len(t, state.Cases, 1)
	assert.Equal(t, "S1", state.Cases[0].Reference)
	require.Len(t, state.Cases[0].Payments, 1)
	payment := state.Cases[0].Payments[0]
	assert.Equal(t, "U1", payment.Reference)
	require.Len(t, payment.Conditions, 1)
	assert.Equal(t, "V1", payment.Conditions[0].Reference)
	require.Len(t, state.Conditions, 1)
	assert.Same(t, state.Conditions[0], payment.Conditions[0], "the payment shares object identity with the flat list")
}

func TestSupplementalPass(t *testing.T) {
	manifest := &casedoc.AttachmentManifest{Attachments: []casedoc.Attachment{
		{Type: "payslip", AdditionalInfo: "last three months", Status: casedoc.AttachmentStatusRequired},
		{Type: "lease", Status: casedoc.AttachmentStatusUploaded},
		{Type: "other", AdditionalInfo: "other", Status: casedoc.AttachmentStatusRequired},
	}}

	t.Run("Fresh Submission", func(t *testing.T) {
		submitted := time.Now().Add(-10 * 24 * time.Hour)
		store := &stubCaseStoreClient{
			eventLog: &casedoc.EventLog{Events: []casedoc.Event{}},
			manifest: manifest,
		}

		state := buildState(t, digitalCase(submitted), store)

		require.Len(t, state.Tasks, 1, "only required, non-placeholder attachments become tasks")
		assert.Equal(t, "payslip", state.Tasks[0].Title)
		assert.False(t, state.Tasks[0].FromPortal, "manifest tasks come from the applicant, not a case-worker request")
	})

	t.Run("Stale Submission", func(t *testing.T) {
		submitted := time.Now().Add(-40 * 24 * time.Hour)
		store := &stubCaseStoreClient{
			eventLog: &casedoc.EventLog{Events: []casedoc.Event{}},
			manifest: manifest,
		}

		state := buildState(t, digitalCase(submitted), store)

		assert.Empty(t, state.Tasks)
	})

	t.Run("Skipped When Documents Requested", func(t *testing.T) {
		submitted := time.Now().Add(-10 * 24 * time.Hour)
		store := &stubCaseStoreClient{
			eventLog: &casedoc.EventLog{Events: []casedoc.Event{
				mustEvent(t, `{"type":"DOCUMENT_REQUESTED","eventTimestamp":"2026-05-01T10:00:00.000Z","documents":[]}`),
			}},
			manifest: manifest,
		}

		state := buildState(t, digitalCase(submitted), store)

		assert.Empty(t, state.Tasks, "the case worker's request supersedes the manifest")
	})
}

func TestBuildPaymentState(t *testing.T) {
	store := &stubCaseStoreClient{eventLog: &casedoc.EventLog{Events: []casedoc.Event{
		mustEvent(t, `{"type":"APPLICATION_STATUS","eventTimestamp":"2026-05-01T10:00:00.000Z","status":"RECEIVED"}`),
		mustEvent(t, `{"type":"CASE_STATUS","eventTimestamp":"2026-05-02T10:00:00.000Z","caseReference":"S1","status":"UNDER_PROCESSING"}`),
		mustEvent(t, `{"type":"PAYMENT","eventTimestamp":"2026-05-03T10:00:00.000Z","paymentReference":"U1","caseReference":"S1","status":"PAID","amount":500}`),
		mustEvent(t, `{"type":"INTERIM_RESPONSE","eventTimestamp":"2026-05-04T10:00:00.000Z"}`),
	}}}

	state, err := newTestService(store, nil).BuildPaymentState(context.Background(), "token", paperCase())
	require.NoError(t, err)

	require.Len(t, state.Cases, 1)
	assert.Len(t, state.Cases[0].Payments, 1)
	assert.Equal(t, models.ApplicationStatusSent, state.Status, "non-payment reducers are skipped")
	assert.False(t, state.InterimResponse.Received)
	assert.Len(t, state.History, 1, "only the case creation narrative remains")
}
