package http

import (
	"net/http"
	"time"

	"github.com/keyward/principald/internal/principal/store"
	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/jwtx"
	"github.com/keyward/principald/pkg/principalsdk"
	"github.com/keyward/principald/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary	Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection and the signing key set.
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	principalsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure	503	{object}	principalsdk.HealthResponse	"status, uptime, version, checks"
//	@Router		/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &principalsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		status := "ok"
		code := http.StatusOK

		// The probe is unauthenticated, so the body carries a fixed marker
		// and the failure detail goes to the log only.
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness database check failed", "error", err)
			checks.Database = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Signer = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, principalsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
