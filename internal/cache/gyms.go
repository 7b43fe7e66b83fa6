package cache

import (
	"context"

	"github.com/gym-network-toolkit/portal/internal/entity"
)

// GymSource is the uncached branding reader, normally the sqldb gym repo.
type GymSource interface {
	GetByID(ctx context.Context, id string) (*entity.Gym, error)
	GetByCode(ctx context.Context, code string) (*entity.Gym, error)
}

// GymDirectory decorates a GymSource with TTL caching. Only found records
// are cached; misses and errors always go back to the source.
type GymDirectory struct {
	source GymSource
	cache  *Cache
}

// NewGymDirectory -.
func NewGymDirectory(source GymSource, cache *Cache) *GymDirectory {
	return &GymDirectory{source: source, cache: cache}
}

// GetByID -.
func (d *GymDirectory) GetByID(ctx context.Context, id string) (*entity.Gym, error) {
	return d.lookup(ctx, "gym:id:"+id, func() (*entity.Gym, error) {
		return d.source.GetByID(ctx, id)
	})
}

// GetByCode -.
func (d *GymDirectory) GetByCode(ctx context.Context, code string) (*entity.Gym, error) {
	return d.lookup(ctx, "gym:code:"+code, func() (*entity.Gym, error) {
		return d.source.GetByCode(ctx, code)
	})
}

func (d *GymDirectory) lookup(_ context.Context, key string, read func() (*entity.Gym, error)) (*entity.Gym, error) {
	if cached, ok := d.cache.Get(key); ok {
		if gym, ok := cached.(*entity.Gym); ok {
			copied := *gym

			return &copied, nil
		}
	}

	gym, err := read()
	if err != nil || gym == nil {
		return gym, err
	}

	copied := *gym
	d.cache.Set(key, &copied)

	return gym, nil
}
