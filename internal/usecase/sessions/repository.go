// Package sessions defines the session store contract. The store is the
// single source of truth for "is this device currently authorized".
package sessions

import (
	"context"
	"errors"

	"github.com/gym-network-toolkit/portal/internal/entity"
)

var (
	// ErrSessionNotFound is returned when a session cannot be found.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// Repository stores captive portal sessions keyed by session id. Writes of
// a whole record are atomic with respect to that id; callers never hold
// store locks across adapter I/O.
type Repository interface {
	// Create stores a new session
	Create(ctx context.Context, session *entity.PortalSession) error

	// Update replaces an existing session record
	Update(ctx context.Context, session *entity.PortalSession) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*entity.PortalSession, error)

	// GetByMAC retrieves the most recent session bound to a hardware address
	GetByMAC(ctx context.Context, mac string) (*entity.PortalSession, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// List returns all stored sessions, expired ones included
	List(ctx context.Context) ([]*entity.PortalSession, error)
}
