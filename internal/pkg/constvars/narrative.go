package constvars

// Texts shown to the applicant in the case timeline. Office names are
// substituted where the event carries one, otherwise the generic variant
// is used.
const (
	HistoryApplicationSentWithOffice = "Your application and attachments have been sent to %s."
	HistoryApplicationSent           = "Your application and attachments have been sent."

	HistoryApplicationReceivedWithOffice = "Your application has been received at %s."
	HistoryApplicationReceived           = "Your application has been received."

	HistoryApplicationUnderProcessing = "Your application is being processed."
	HistoryApplicationCompleted       = "Your application has been processed."
	HistoryApplicationNotProcessed    = "Your application will not be processed."

	HistoryCaseUnderProcessingTitled = "The case %s is being processed."
	HistoryCaseNotProcessedTitled    = "The case %s will not be processed."
	HistoryCaseNoInsightTitled       = "We cannot show the status of the case %s here."
	HistoryCaseUnderProcessing       = "Your case is being processed."
	HistoryCaseNotProcessed          = "Your case will not be processed."
	HistoryCaseNoInsight             = "We cannot show the status of your case here."

	HistoryDocumentsRequested = "We need more information for your application."
	HistoryDocumentsReviewed  = "We have reviewed your information and will let you know if we need anything more from you."
	HistoryInterimResponse    = "You have received a letter about the expected processing time for your application."
	HistoryDecisionMade       = "You have received a decision on your application."

	HistoryForwardedToOffice = "Your application has been forwarded to %s."
	HistoryForwardedGeneric  = "Your application has been forwarded to another social services office."

	LinkTextViewLetter      = "View the letter"
	LinkTextViewApplication = "View the application"
	LinkTextViewDecision    = "View the decision"
)

const (
	TaskTitleDeliverDocumentation = "Deliver documentation"
)
