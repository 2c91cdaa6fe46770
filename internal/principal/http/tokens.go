package http

import (
	"net/http"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/principalsdk"
	"github.com/keyward/principald/pkg/slogx"
)

// TokensHandler handles auth token endpoints for one kind.
type TokensHandler struct {
	Service *service.PrincipalService
}

func toAuthTokenResponse(tok domain.AuthToken) principalsdk.AuthTokenResponse {
	return principalsdk.AuthTokenResponse{
		TokenID:   tok.TokenID,
		Created:   tok.Created,
		Expire:    tok.Expire,
		AuthToken: tok.Secret,
	}
}

// HandleGenerate handles POST /v1/{kind}/{id}/tokens
//
//	@Summary	Generate Auth Token
//	@Description	Issues a new long-lived auth token. The secret is returned here and on individual retrieval, never in listings.
//	@Tags		Tokens
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Param		id	path		string							true	"Principal id"
//	@Success	201	{object}	principalsdk.AuthTokenResponse	"tokenId, created, expire, authToken"
//	@Failure	404	{object}	principalsdk.ErrorResponse		"error"
//	@Router		/v1/accounts/{id}/tokens [post].
func (h *TokensHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tok, err := h.Service.GenerateAuthToken(ctx, httpx.OwnerFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuthTokenResponse(tok))
}

// HandleGet handles GET /v1/{kind}/{id}/tokens/{tokenId}
//
//	@Summary	Get Auth Token
//	@Tags		Tokens
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Param		id		path		string							true	"Principal id"
//	@Param		tokenId	path		string							true	"Token id"
//	@Success	200		{object}	principalsdk.AuthTokenResponse	"tokenId, created, expire, authToken"
//	@Failure	404		{object}	principalsdk.ErrorResponse		"error"
//	@Router		/v1/accounts/{id}/tokens/{tokenId} [get].
func (h *TokensHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tok, err := h.Service.GetAuthToken(ctx, httpx.OwnerFromContext(ctx), r.PathValue("id"), r.PathValue("tokenId"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthTokenResponse(tok))
}

// HandleRemove handles DELETE /v1/{kind}/{id}/tokens/{tokenId}
//
//	@Summary	Revoke Auth Token
//	@Tags		Tokens
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Param		id		path		string						true	"Principal id"
//	@Param		tokenId	path		string						true	"Token id"
//	@Success	200		{boolean}	boolean						"true"
//	@Failure	404		{object}	principalsdk.ErrorResponse	"error"
//	@Router		/v1/accounts/{id}/tokens/{tokenId} [delete].
func (h *TokensHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed, err := h.Service.RemoveAuthToken(ctx, httpx.OwnerFromContext(ctx), r.PathValue("id"), r.PathValue("tokenId"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, removed)
}
