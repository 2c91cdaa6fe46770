package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/keyward/principald/internal/principal/domain"
	"github.com/keyward/principald/pkg/jwtx"
	"github.com/keyward/principald/pkg/slogx"
)

// Login converts a presented auth token into a fresh session. On a match it
// issues two signed tokens: the session token and a shorter-lived access
// token. Nothing is persisted; both tokens are self-contained.
func (s *PrincipalService) Login(ctx context.Context, ownerID, principalID, presented string) (domain.Session, error) {
	p, err := s.Get(ctx, ownerID, principalID)
	if err != nil {
		return domain.Session{}, err
	}

	if _, err := s.matchAuthToken(ctx, p, presented); err != nil {
		slogx.FromContext(ctx).Info("login rejected",
			slog.String("kind", string(s.Kind)),
			slog.String("principal_id", principalID),
		)
		return domain.Session{}, err
	}

	session, err := s.issueSession(p)
	if err != nil {
		return domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("login succeeded",
		slog.String("kind", string(s.Kind)),
		slog.String("principal_id", principalID),
	)
	return session, nil
}

func (s *PrincipalService) issueSession(p domain.Principal) (domain.Session, error) {
	now := time.Now()

	sessionToken, err := s.Signer.Sign(jwtx.NewClaims(
		jwtx.TokenUseSession,
		p.ID, p.OwnerID, p.Label, string(p.Kind),
		s.sessionTTL(), s.Issuer, now,
	))
	if err != nil {
		return domain.Session{}, err
	}

	accessToken, err := s.Signer.Sign(jwtx.NewClaims(
		jwtx.TokenUseAccess,
		p.ID, p.OwnerID, p.Label, string(p.Kind),
		s.accessTTL(), s.Issuer, now,
	))
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{SessionToken: sessionToken, AccessToken: accessToken}, nil
}

// Verify validates a session token and re-resolves the identity it claims.
// Every verification failure collapses into ErrSessionInvalid. The principal
// is re-fetched on purpose: embedded claims alone would keep a deleted
// principal's sessions alive until natural expiry.
func (s *PrincipalService) Verify(ctx context.Context, sessionToken string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(sessionToken)
	if err != nil {
		return domain.Identity{}, ErrSessionInvalid
	}
	if claims.TokenUse != jwtx.TokenUseSession || claims.Kind != string(s.Kind) {
		return domain.Identity{}, ErrSessionInvalid
	}
	if claims.Subject == "" || claims.OwnerID == "" {
		return domain.Identity{}, ErrSessionInvalid
	}

	p, err := s.Get(ctx, claims.OwnerID, claims.Subject)
	if err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{
		PrincipalID: p.ID,
		OwnerID:     p.OwnerID,
		Label:       p.Label,
	}, nil
}
