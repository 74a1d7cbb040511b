package middleware

import (
	"context"
	"net/http"

	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/response"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

type contextKey string

const (
	customerIDKey   contextKey = "customer_id"
	sessionTokenKey contextKey = "session_token"
)

type SessionMiddleware struct {
	Store domain.SessionStore
}

func NewSessionMiddleware(store domain.SessionStore) *SessionMiddleware {
	return &SessionMiddleware{Store: store}
}

// RequireCustomer resolves the session token to a customer id and fails
// closed with 401 when the session is absent, unknown or expired.
func (m *SessionMiddleware) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Session-Token")
		if token == "" {
			if cookie, err := r.Cookie("session"); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "session_required", "active customer session required")
			return
		}

		customerID, err := m.Store.Resolve(r.Context(), token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "session_invalid", "session is expired or unknown")
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		ctx = context.WithValue(ctx, sessionTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CustomerIDFrom(ctx context.Context) string {
	customerID, _ := ctx.Value(customerIDKey).(string)
	return customerID
}

func SessionTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}
