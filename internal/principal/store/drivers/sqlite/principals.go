package sqlite

import (
	"context"
	"time"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/internal/principal/store"
)

type principalsRepo struct {
	q querier
}

func (r *principalsRepo) Create(ctx context.Context, p domain.Principal) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO principals (id, owner_id, kind, label, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.OwnerID, string(p.Kind), p.Label, now, now,
	)
	return mapUnavailable(err)
}

func (r *principalsRepo) Get(ctx context.Context, ownerID string, kind domain.Kind, id string) (domain.Principal, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, owner_id, kind, label, created_at, updated_at
		FROM principals
		WHERE id = ? AND owner_id = ? AND kind = ?`,
		id, ownerID, string(kind),
	)

	var p domain.Principal
	var k string
	if err := row.Scan(&p.ID, &p.OwnerID, &k, &p.Label, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Principal{}, mapNotFound(err)
	}
	p.Kind = domain.Kind(k)

	tokens, err := r.tokensFor(ctx, p.ID)
	if err != nil {
		return domain.Principal{}, err
	}
	p.Tokens = tokens
	return p, nil
}

func (r *principalsRepo) List(ctx context.Context, ownerID string, kind domain.Kind) ([]domain.Principal, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, owner_id, kind, label, created_at, updated_at
		FROM principals
		WHERE owner_id = ? AND kind = ?
		ORDER BY id`,
		ownerID, string(kind),
	)
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Principal{}
	for rows.Next() {
		var p domain.Principal
		var k string
		if err := rows.Scan(&p.ID, &p.OwnerID, &k, &p.Label, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, mapUnavailable(err)
		}
		p.Kind = domain.Kind(k)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapUnavailable(err)
	}

	for i := range out {
		tokens, err := r.tokensFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Tokens = tokens
	}
	return out, nil
}

func (r *principalsRepo) Delete(ctx context.Context, ownerID string, kind domain.Kind, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM principals
		WHERE id = ? AND owner_id = ? AND kind = ?`,
		id, ownerID, string(kind),
	)
	if err != nil {
		return false, mapUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapUnavailable(err)
	}
	return n > 0, nil
}

// AddToken inserts the token only when the principal exists under this owner,
// in one statement, so concurrent mutations of the same token set serialize
// at the database rather than racing a read-modify-write in the service.
func (r *principalsRepo) AddToken(ctx context.Context, ownerID string, kind domain.Kind, principalID string, t domain.AuthToken) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO auth_tokens (token_id, principal_id, created_ms, expire_ms, secret_ciphertext)
		SELECT ?, id, ?, ?, ?
		FROM principals
		WHERE id = ? AND owner_id = ? AND kind = ?`,
		t.TokenID, t.Created, t.Expire, t.SecretCiphertext,
		principalID, ownerID, string(kind),
	)
	if err != nil {
		return mapUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapUnavailable(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *principalsRepo) RemoveToken(ctx context.Context, ownerID string, kind domain.Kind, principalID, tokenID string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM auth_tokens
		WHERE token_id = ? AND principal_id IN (
			SELECT id FROM principals WHERE id = ? AND owner_id = ? AND kind = ?
		)`,
		tokenID, principalID, ownerID, string(kind),
	)
	if err != nil {
		return false, mapUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapUnavailable(err)
	}
	if n == 0 {
		return false, store.ErrNotFound
	}
	return true, nil
}

func (r *principalsRepo) GetToken(ctx context.Context, ownerID string, kind domain.Kind, principalID, tokenID string) (domain.AuthToken, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT t.token_id, t.principal_id, t.created_ms, t.expire_ms, t.secret_ciphertext
		FROM auth_tokens t
		JOIN principals p ON p.id = t.principal_id
		WHERE t.token_id = ? AND p.id = ? AND p.owner_id = ? AND p.kind = ?`,
		tokenID, principalID, ownerID, string(kind),
	)

	var t domain.AuthToken
	if err := row.Scan(&t.TokenID, &t.PrincipalID, &t.Created, &t.Expire, &t.SecretCiphertext); err != nil {
		return domain.AuthToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *principalsRepo) tokensFor(ctx context.Context, principalID string) ([]domain.AuthToken, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT token_id, principal_id, created_ms, expire_ms, secret_ciphertext
		FROM auth_tokens
		WHERE principal_id = ?
		ORDER BY token_id`,
		principalID,
	)
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.AuthToken{}
	for rows.Next() {
		var t domain.AuthToken
		if err := rows.Scan(&t.TokenID, &t.PrincipalID, &t.Created, &t.Expire, &t.SecretCiphertext); err != nil {
			return nil, mapUnavailable(err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapUnavailable(err)
	}
	return out, nil
}
