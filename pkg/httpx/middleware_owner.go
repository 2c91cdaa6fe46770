package httpx

import (
	"net/http"
	"strings"
)

// OwnerHeader carries the caller's tenant id, attached by the upstream
// access-control middleware after it has authenticated the caller. This
// service trusts the header as-is; it must only be reachable behind that
// middleware.
const OwnerHeader = "X-Owner-ID"

// OwnerMiddleware extracts the tenant id from the request and injects it into
// the context. Requests without an owner are rejected before any handler runs.
func OwnerMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID := strings.TrimSpace(r.Header.Get(OwnerHeader))
			if ownerID == "" {
				WriteError(w, http.StatusUnauthorized, "missing_owner")
				return
			}

			ctx := ContextWithOwner(r.Context(), ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
