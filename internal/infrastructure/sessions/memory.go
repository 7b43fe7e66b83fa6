// Package sessions provides infrastructure implementations for session storage.
package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/gym-network-toolkit/portal/internal/entity"
	usecase "github.com/gym-network-toolkit/portal/internal/usecase/sessions"
)

// _defaultRetention is how long a terminal (expired/disconnected) record is
// kept so a final status check can still report why the session ended.
const _defaultRetention = time.Hour

// InMemoryRepository is an in-memory implementation of sessions.Repository
// for single-process deployments.
type InMemoryRepository struct {
	sessions      map[string]*entity.PortalSession
	macIndex      map[string]string // mac -> sessionID
	mu            sync.RWMutex
	retention     time.Duration
	cleanupTicker *time.Ticker
	done          chan struct{}
}

var _ usecase.Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository creates a new in-memory session repository.
func NewInMemoryRepository(cleanupInterval time.Duration) *InMemoryRepository {
	repo := &InMemoryRepository{
		sessions:      make(map[string]*entity.PortalSession),
		macIndex:      make(map[string]string),
		retention:     _defaultRetention,
		cleanupTicker: time.NewTicker(cleanupInterval),
		done:          make(chan struct{}),
	}

	go repo.cleanupLoop()

	return repo
}

// cleanupLoop periodically drops terminal sessions past retention. Expiring
// live sessions is the sweep's job, not the store's.
func (r *InMemoryRepository) cleanupLoop() {
	for {
		select {
		case <-r.cleanupTicker.C:
			r.dropStale()
		case <-r.done:
			return
		}
	}
}

func (r *InMemoryRepository) dropStale() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.retention)

	for id, session := range r.sessions {
		if session.Status != entity.SessionActive && session.EndTime.Before(cutoff) {
			if r.macIndex[session.MACAddress] == id {
				delete(r.macIndex, session.MACAddress)
			}

			delete(r.sessions, id)
		}
	}
}

// Stop stops the cleanup goroutine.
func (r *InMemoryRepository) Stop() {
	r.cleanupTicker.Stop()
	close(r.done)
}

// Create stores a new session.
func (r *InMemoryRepository) Create(_ context.Context, session *entity.PortalSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *session
	r.sessions[cp.ID] = &cp
	r.macIndex[cp.MACAddress] = cp.ID

	return nil
}

// Update replaces an existing session record.
func (r *InMemoryRepository) Update(_ context.Context, session *entity.PortalSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return usecase.ErrSessionNotFound
	}

	cp := *session
	r.sessions[cp.ID] = &cp

	return nil
}

// Get retrieves a session by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entity.PortalSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, usecase.ErrSessionNotFound
	}

	cp := *session

	return &cp, nil
}

// GetByMAC retrieves the session currently indexed for a hardware address.
func (r *InMemoryRepository) GetByMAC(_ context.Context, mac string) (*entity.PortalSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.macIndex[mac]
	if !exists {
		return nil, usecase.ErrSessionNotFound
	}

	session, exists := r.sessions[id]
	if !exists {
		return nil, usecase.ErrSessionNotFound
	}

	cp := *session

	return &cp, nil
}

// Delete removes a session.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return usecase.ErrSessionNotFound
	}

	if r.macIndex[session.MACAddress] == id {
		delete(r.macIndex, session.MACAddress)
	}

	delete(r.sessions, id)

	return nil
}

// List returns all stored sessions, expired ones included.
func (r *InMemoryRepository) List(_ context.Context) ([]*entity.PortalSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.PortalSession, 0, len(r.sessions))

	for _, session := range r.sessions {
		cp := *session
		all = append(all, &cp)
	}

	return all, nil
}
