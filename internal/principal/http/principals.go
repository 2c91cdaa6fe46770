package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/internal/principal/service"
	"github.com/keyward/principald/pkg/httpx"
	"github.com/keyward/principald/pkg/principalsdk"
	"github.com/keyward/principald/pkg/slogx"
)

// PrincipalsHandler handles principal lifecycle endpoints for one kind.
type PrincipalsHandler struct {
	Service *service.PrincipalService
}

func toPrincipalResponse(p domain.Principal) principalsdk.PrincipalResponse {
	summaries := make([]principalsdk.AuthTokenSummary, len(p.Tokens))
	for i, tok := range p.Tokens {
		summaries[i] = principalsdk.AuthTokenSummary{
			TokenID: tok.TokenID,
			Created: tok.Created,
			Expire:  tok.Expire,
		}
	}
	return principalsdk.PrincipalResponse{
		ID:    p.ID,
		Label: p.Label,
		Token: summaries,
	}
}

// HandleCreate handles POST /v1/{kind}
//
//	@Summary	Create Principal
//	@Tags		Principals
//	@Accept		json
//	@Produce	json
//	@Param		X-Owner-ID	header		string									true	"Tenant id"
//	@Param		request		body		principalsdk.CreatePrincipalRequest		true	"Principal attributes"
//	@Success	201			{object}	principalsdk.CreatePrincipalResponse	"id"
//	@Failure	400			{object}	principalsdk.ErrorResponse				"error"
//	@Failure	401			{object}	principalsdk.ErrorResponse				"error"
//	@Router		/v1/accounts [post].
func (h *PrincipalsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req principalsdk.CreatePrincipalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	p, err := h.Service.Create(ctx, httpx.OwnerFromContext(ctx), req.Label)
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, principalsdk.CreatePrincipalResponse{ID: p.ID})
}

// HandleList handles GET /v1/{kind}
//
//	@Summary	List Principals
//	@Tags		Principals
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Success	200	{array}		principalsdk.PrincipalResponse	"principals with token summaries"
//	@Failure	401	{object}	principalsdk.ErrorResponse		"error"
//	@Router		/v1/accounts [get].
func (h *PrincipalsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principals, err := h.Service.GetAll(ctx, httpx.OwnerFromContext(ctx))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	out := make([]principalsdk.PrincipalResponse, len(principals))
	for i, p := range principals {
		out[i] = toPrincipalResponse(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/{kind}/{id}
//
//	@Summary	Get Principal
//	@Tags		Principals
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Param		id	path		string							true	"Principal id"
//	@Success	200	{object}	principalsdk.PrincipalResponse	"id, label, token"
//	@Failure	404	{object}	principalsdk.ErrorResponse		"error"
//	@Router		/v1/accounts/{id} [get].
func (h *PrincipalsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.Service.Get(ctx, httpx.OwnerFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPrincipalResponse(p))
}

// HandleDelete handles DELETE /v1/{kind}/{id}
//
//	@Summary	Delete Principal
//	@Description	Deletes the principal and all of its auth tokens.
//	@Tags		Principals
//	@Produce	json
//	@Param		X-Owner-ID	header	string	true	"Tenant id"
//	@Param		id	path		string						true	"Principal id"
//	@Success	200	{boolean}	boolean						"true"
//	@Failure	404	{object}	principalsdk.ErrorResponse	"error"
//	@Router		/v1/accounts/{id} [delete].
func (h *PrincipalsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.Service.Delete(ctx, httpx.OwnerFromContext(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, slogx.FromContext(ctx), err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, deleted)
}
