package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/response"
)

// RequireStorefrontKey authenticates server-to-server calls from the
// storefront (purchase, refund, session issue) with a shared key.
func RequireStorefrontKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Storefront-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				response.Error(w, http.StatusUnauthorized, "storefront_key_invalid", "missing or invalid storefront key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
