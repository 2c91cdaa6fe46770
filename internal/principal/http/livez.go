package http

import (
	"net/http"
	"time"

	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/principalsdk"
)

// LivezHandler godoc
//
//	@Summary	Health Check Endpoint
//	@Description	Liveness probe returning basic service status, uptime and version. Always 200 while the process is running.
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	principalsdk.HealthResponse	"status, uptime, version"
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, principalsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
