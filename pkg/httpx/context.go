package httpx

import "context"

type ctxKey string

const ctxKeyOwnerID ctxKey = "owner_id"

// ContextWithOwner returns a context carrying the caller's tenant id.
func ContextWithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKeyOwnerID, ownerID)
}

// OwnerFromContext returns the caller's tenant id, or "" if none was attached.
func OwnerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyOwnerID).(string); ok {
		return v
	}
	return ""
}
