package middlewares

import (
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// Authenticate validates the bearer token and puts the applicant identity
// and the raw token on the request context. The token itself is forwarded
// verbatim to the case store on every outbound call.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], constvars.AuthorizationBearer) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := parts[1]

		applicantID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_APPLICANT_ID_KEY, applicantID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_BEARER_TOKEN_KEY, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
