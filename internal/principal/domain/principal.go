package domain

import "time"

// Kind distinguishes the two principal flavors for external naming and
// storage partitioning. The core behaves identically for both.
type Kind string

const (
	KindAccount Kind = "account"
	KindAgent   Kind = "agent"
)

// Principal is one user account or machine agent, owned by exactly one
// tenant. The owner id is attached at creation and never changes.
type Principal struct {
	ID      string
	OwnerID string
	Kind    Kind
	Label   string
	Tokens  []AuthToken

	CreatedAt time.Time
	UpdatedAt time.Time
}
