package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_APPLICANT_ID_KEY         ContextKey = "applicant_id"
	CONTEXT_BEARER_TOKEN_KEY         ContextKey = "bearer_token"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CASEVIEW_SVC_"
)

const (
	// Events without a matching case land in a synthetic case so the
	// applicant still sees them.
	DefaultCaseReference = "default"
	DefaultCaseTitle     = "Financial assistance"
)

const (
	// Placeholder attachment rows the application portal emits when the
	// applicant skipped the upload step.
	AttachmentTypeOther = "other"
)

const (
	// Event log schema versions this service understands.
	EventLogVersionMajor = 1
)

const (
	MunicipalitySuffix = " kommune"
)
