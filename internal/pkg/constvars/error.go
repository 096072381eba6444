package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"uuid":     "must be a valid UUID",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientCaseNotFound                  = "we could not find that application"
	ErrClientCaseStoreUnavailable          = "case information is unavailable right now, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// Case store messages
	ErrDevCaseStoreSearchCases  = "failed to search cases in case store"
	ErrDevCaseStoreGetDocument  = "failed to get document from case store"
	ErrDevCaseStoreDecodeHead   = "failed to decode case document from case store"
	ErrDevCaseStoreCaseNotFound = "case not found in case store"
	ErrDevCaseStoreUnauthorized = "case store rejected the integration credentials"
	ErrDevCaseStoreForbidden    = "applicant has no access to the case"
	ErrDevCaseStoreDocumentGone = "case document removed from case store"

	// Event log messages
	ErrDevEventLogDecode      = "failed to decode event log"
	ErrDevEventLogUnknownType = "unknown event type in event log"
	ErrDevEventLogUnknownEnum = "unknown enum value in event log"

	// Office registry messages
	ErrDevOfficeRegistryLookup = "failed to look up office in office registry"
	ErrDevOfficeRegistryDecode = "failed to decode office registry response"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod  = "Unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthMissingSubject = "token has no subject claim"

	// Redis messages
	ErrDevRedisSet = "failed to store value into redis"
	ErrDevRedisGet = "failed to get value from redis"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
)

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}
