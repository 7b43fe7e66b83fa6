package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gym-network-toolkit/portal/internal/entity"
	usecase "github.com/gym-network-toolkit/portal/internal/usecase/sessions"
)

// RedisRepository is a shared implementation of sessions.Repository for
// multi-instance deployments. Same contract as the in-memory store; the
// sweep stays idempotent so several instances may run it concurrently.
type RedisRepository struct {
	rdb       *redis.Client
	retention time.Duration
}

var _ usecase.Repository = (*RedisRepository)(nil)

// NewRedisRepository creates a session repository on an existing Redis client.
func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{
		rdb:       rdb,
		retention: _defaultRetention,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("portal:session:%s", id)
}

func sessionMACKey(mac string) string {
	return fmt.Sprintf("portal:session:mac:%s", mac)
}

// ttlFor keeps the record around past its end time so a final status check
// can still observe the terminal state.
func (r *RedisRepository) ttlFor(session *entity.PortalSession) time.Duration {
	ttl := time.Until(session.EndTime) + r.retention
	if ttl < r.retention {
		ttl = r.retention
	}

	return ttl
}

func (r *RedisRepository) write(ctx context.Context, session *entity.PortalSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := r.ttlFor(session)

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, ttl)
	pipe.Set(ctx, sessionMACKey(session.MACAddress), session.ID, ttl)

	_, err = pipe.Exec(ctx)

	return err
}

// Create stores a new session.
func (r *RedisRepository) Create(ctx context.Context, session *entity.PortalSession) error {
	return r.write(ctx, session)
}

// Update replaces an existing session record.
func (r *RedisRepository) Update(ctx context.Context, session *entity.PortalSession) error {
	n, err := r.rdb.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return usecase.ErrSessionNotFound
	}

	return r.write(ctx, session)
}

// Get retrieves a session by ID.
func (r *RedisRepository) Get(ctx context.Context, id string) (*entity.PortalSession, error) {
	val, err := r.rdb.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}

		return nil, err
	}

	var session entity.PortalSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetByMAC retrieves the session currently indexed for a hardware address.
func (r *RedisRepository) GetByMAC(ctx context.Context, mac string) (*entity.PortalSession, error) {
	id, err := r.rdb.Get(ctx, sessionMACKey(mac)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}

		return nil, err
	}

	return r.Get(ctx, id)
}

// Delete removes a session.
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(id))

	// The MAC index may already point at a newer session for this device.
	if owner, err := r.rdb.Get(ctx, sessionMACKey(session.MACAddress)).Result(); err == nil && owner == id {
		pipe.Del(ctx, sessionMACKey(session.MACAddress))
	}

	_, err = pipe.Exec(ctx)

	return err
}

// List returns all stored sessions, expired ones included.
func (r *RedisRepository) List(ctx context.Context) ([]*entity.PortalSession, error) {
	var (
		all    []*entity.PortalSession
		cursor uint64
	)

	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, "portal:session:*", 100).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			if strings.HasPrefix(key, "portal:session:mac:") {
				continue
			}

			val, err := r.rdb.Get(ctx, key).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}

				return nil, err
			}

			var session entity.PortalSession
			if err := json.Unmarshal([]byte(val), &session); err != nil {
				continue
			}

			all = append(all, &session)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return all, nil
}
