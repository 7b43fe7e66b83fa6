package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/gym-network-toolkit/portal/internal/entity"
	ucsqldb "github.com/gym-network-toolkit/portal/internal/usecase/sqldb"
	"github.com/gym-network-toolkit/portal/pkg/db"
	"github.com/gym-network-toolkit/portal/pkg/logger"
	"github.com/gym-network-toolkit/portal/pkg/portalerrors"
)

var ErrGymRepo = ucsqldb.DatabaseError{Portal: portalerrors.CreatePortalError("GymRepo")}

// GymRepo -.
type GymRepo struct {
	*db.SQL
	log logger.Interface
}

// NewGymRepo -.
func NewGymRepo(database *db.SQL, log logger.Interface) *GymRepo {
	return &GymRepo{database, log}
}

func (r *GymRepo) get(ctx context.Context, pred squirrel.Eq) (*entity.Gym, error) {
	sqlQuery, args, err := r.Builder.
		Select("id", "code", "name", "logo_url", "welcome_message").
		From("gyms").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, ErrGymRepo.Wrap("get", "builder.ToSql", err)
	}

	row := r.Pool.QueryRowContext(ctx, sqlQuery, args...)

	var g entity.Gym

	err = row.Scan(&g.ID, &g.Code, &g.Name, &g.LogoURL, &g.WelcomeMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, ErrGymRepo.Wrap("get", "row.Scan", err)
	}

	return &g, nil
}

// GetByID returns the gym record, or nil when absent.
func (r *GymRepo) GetByID(ctx context.Context, id string) (*entity.Gym, error) {
	return r.get(ctx, squirrel.Eq{"id": id})
}

// GetByCode returns the gym matching a portal gym code, or nil when absent.
func (r *GymRepo) GetByCode(ctx context.Context, code string) (*entity.Gym, error) {
	return r.get(ctx, squirrel.Eq{"code": code})
}
