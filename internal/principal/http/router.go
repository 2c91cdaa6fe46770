package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/internal/principal/store"
	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/jwtx"
	"github.com/keyward/principald/pkg/slogx"

	_ "github.com/keyward/principald/api/principal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	// One service instance per principal kind. Both share the store, the
	// envelope and the signer; only the kind partition differs.
	Accounts *service.PrincipalService
	Agents   *service.PrincipalService
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerKind("accounts", r.Accounts)
	r.registerKind("agents", r.Agents)
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Principal Service API
//	@version		0.1.0
//	@description	Multi-tenant credential and session service. Manages account and agent principals,
//	@description	issues and revokes long-lived auth tokens, and exchanges them for signed
//	@description	session/access token pairs via login and verify.
//	@description
//	@description				Tenant attribution comes from the X-Owner-ID header, attached by the upstream
//	@description				access-control middleware after it has authenticated the caller.
//
//	@contact.name				Keyward Team
//	@contact.url				https://github.com/keyward/principald
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	OwnerHeader
//	@in							header
//	@name						X-Owner-ID
//	@description				Tenant id attached by the upstream ACL middleware.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// registerKind mounts the shared handler set for one principal kind. The
// account and agent surfaces are identical apart from the path prefix and the
// kind partition inside the service.
func (r *Router) registerKind(prefix string, svc *service.PrincipalService) {
	principals := &PrincipalsHandler{Service: svc}
	tokens := &TokensHandler{Service: svc}
	sessions := &SessionHandler{Service: svc}

	owner := httpx.OwnerMiddleware()

	r.Mux.Handle("POST /v1/"+prefix,
		httpx.Chain(http.HandlerFunc(principals.HandleCreate),
			owner,
			httpx.RateLimitByOwner(httpx.ModerateLimit),
		))
	r.Mux.Handle("GET /v1/"+prefix,
		httpx.Chain(http.HandlerFunc(principals.HandleList),
			owner,
			httpx.RateLimitByOwner(httpx.LenientLimit),
		))
	r.Mux.Handle("GET /v1/"+prefix+"/{id}",
		httpx.Chain(http.HandlerFunc(principals.HandleGet),
			owner,
			httpx.RateLimitByOwner(httpx.LenientLimit),
		))
	r.Mux.Handle("DELETE /v1/"+prefix+"/{id}",
		httpx.Chain(http.HandlerFunc(principals.HandleDelete),
			owner,
			httpx.RateLimitByOwner(httpx.ModerateLimit),
		))

	r.Mux.Handle("POST /v1/"+prefix+"/{id}/tokens",
		httpx.Chain(http.HandlerFunc(tokens.HandleGenerate),
			owner,
			httpx.RateLimitByOwner(httpx.ModerateLimit),
		))
	r.Mux.Handle("GET /v1/"+prefix+"/{id}/tokens/{tokenId}",
		httpx.Chain(http.HandlerFunc(tokens.HandleGet),
			owner,
			httpx.RateLimitByOwner(httpx.ModerateLimit),
		))
	r.Mux.Handle("DELETE /v1/"+prefix+"/{id}/tokens/{tokenId}",
		httpx.Chain(http.HandlerFunc(tokens.HandleRemove),
			owner,
			httpx.RateLimitByOwner(httpx.ModerateLimit),
		))

	// Credential exchange endpoints get the strictest limits, keyed by IP:
	// these are the brute-force targets.
	r.Mux.Handle("POST /v1/"+prefix+"/login",
		httpx.Chain(http.HandlerFunc(sessions.HandleLogin),
			owner,
			httpx.RateLimitByIP(httpx.StrictLimit),
		))
	r.Mux.Handle("POST /v1/"+prefix+"/verify",
		httpx.Chain(http.HandlerFunc(sessions.HandleVerify),
			owner,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
}
