package utils

import (
	"context"

	"caseview-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetApplicantID(ctx context.Context) string {
	if applicantID, ok := ctx.Value(constvars.CONTEXT_APPLICANT_ID_KEY).(string); ok {
		return applicantID
	}
	return ""
}

func GetBearerToken(ctx context.Context) string {
	if token, ok := ctx.Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string); ok {
		return token
	}
	return ""
}
