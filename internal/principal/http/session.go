package http

import (
	"encoding/json"
	"net/http"

	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/principalsdk"
	"github.com/keyward/principald/pkg/slogx"
)

// SessionHandler handles the login and verify exchange for one kind.
type SessionHandler struct {
	Service *service.PrincipalService
}

// HandleLogin handles POST /v1/{kind}/login
//
//	@Summary	Login
//	@Description	Exchanges a presented auth token for a fresh session token and access token pair.
//	@Tags		Sessions
//	@Accept		json
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Param		request	body		principalsdk.LoginRequest		true	"Principal id and auth token secret"
//	@Success	200		{object}	principalsdk.SessionResponse	"sessionToken, accessToken"
//	@Failure	401		{object}	principalsdk.ErrorResponse		"error"
//	@Failure	404		{object}	principalsdk.ErrorResponse		"error"
//	@Router		/v1/accounts/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req principalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.ID == "" || req.AuthToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	session, err := h.Service.Login(ctx, httpx.OwnerFromContext(ctx), req.ID, req.AuthToken)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, principalsdk.SessionResponse{
		SessionToken: session.SessionToken,
		AccessToken:  session.AccessToken,
	})
}

// HandleVerify handles POST /v1/{kind}/verify
//
//	@Summary	Verify Session
//	@Description	Validates a session token and resolves the identity it was issued to. Fails once the principal is deleted, even before the token expires.
//	@Tags		Sessions
//	@Accept		json
//	@Produce	json
//	@Param		request	body		principalsdk.VerifyRequest		true	"Session token"
//	@Success	200		{object}	principalsdk.IdentityResponse	"id, label, ownerId"
//	@Failure	401		{object}	principalsdk.ErrorResponse		"error"
//	@Failure	404		{object}	principalsdk.ErrorResponse		"error"
//	@Router		/v1/accounts/verify [post].
func (h *SessionHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req principalsdk.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.SessionToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	identity, err := h.Service.Verify(ctx, req.SessionToken)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, principalsdk.IdentityResponse{
		ID:      identity.PrincipalID,
		Label:   identity.Label,
		OwnerID: identity.OwnerID,
	})
}
