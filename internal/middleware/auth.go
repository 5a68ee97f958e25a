package middleware

import (
	"net/http"

	"github.com/benefix/card-service/internal/service"
	"github.com/sirupsen/logrus"
)

// APIKeyHeader carries the partner company's key on issuing requests.
const APIKeyHeader = "x-api-key"

// AuthMiddleware rejects requests whose x-api-key header does not resolve to a
// partner company.
func AuthMiddleware(auth *service.AuthService, log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				http.Error(w, "missing API key", http.StatusUnauthorized)
				return
			}

			if _, err := auth.VerifyAPIKey(apiKey); err != nil {
				log.Warnf("Rejected request with invalid API key")
				http.Error(w, "invalid API key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
