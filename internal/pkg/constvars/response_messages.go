package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Case-related messages
	GetCasesSuccessMessage      = "get cases successfully"
	GetCaseStatusSuccessMessage = "get case status successfully"
	GetTasksSuccessMessage      = "get tasks successfully"
	GetConditionsSuccessMessage = "get conditions successfully"
	GetDocRequirementsSuccess   = "get documentation requirements successfully"
	GetPaymentsSuccessMessage   = "get payments successfully"
	GetTimelineSuccessMessage   = "get timeline successfully"
)
