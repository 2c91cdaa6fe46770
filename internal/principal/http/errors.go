package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/principalsdk"
)

// writeServiceError translates service failures into the API error taxonomy.
// NotFound covers both genuinely absent records and cross-tenant lookups, so
// callers cannot probe other tenants' id space.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, service.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrCredentialInvalid):
		status, code = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, service.ErrCredentialExpired):
		status, code = http.StatusUnauthorized, "credential_expired"
	case errors.Is(err, service.ErrSessionInvalid):
		status, code = http.StatusUnauthorized, "invalid_session"
	case errors.Is(err, service.ErrUnavailable):
		status, code = http.StatusServiceUnavailable, "unavailable"
	default:
		log.Error("unexpected service error", "error", err)
		status, code = http.StatusInternalServerError, "internal"
	}

	httpx.WriteJSON(w, status, principalsdk.ErrorResponse{Error: code})
}
