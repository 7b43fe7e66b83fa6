// Package sqldb implements the database-backed repositories: member and
// gym reads, usage-record appends. Members and gyms are owned by the
// external management system; this layer only reads them.
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

var ErrMemberRepo = ucsqldb.DatabaseError{Portal: portalerrors.CreatePortalError("MemberRepo")}

// MemberRepo -.
type MemberRepo struct {
	*db.SQL
	log logger.Interface
}

// NewMemberRepo -.
func NewMemberRepo(database *db.SQL, log logger.Interface) *MemberRepo {
	return &MemberRepo{database, log}
}

// GetByEmail returns the member with the given email, scoped to a gym when
// gymID is non-empty. Returns nil without error when no row matches.
func (r *MemberRepo) GetByEmail(ctx context.Context, email, gymID string) (*entity.Member, error) {
	builder := r.Builder.
		Select("id", "gym_id", "name", "email", "password_hash", "membership_type", "membership_active", "membership_expiry").
		From("members").
		Where(squirrel.Eq{"email": email})

	if gymID != "" {
		builder = builder.Where(squirrel.Eq{"gym_id": gymID})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, ErrMemberRepo.Wrap("GetByEmail", "builder.ToSql", err)
	}

	row := r.Pool.QueryRowContext(ctx, sqlQuery, args...)

	var m entity.Member

	err = row.Scan(&m.ID, &m.GymID, &m.Name, &m.Email, &m.PasswordHash, &m.MembershipType, &m.MembershipActive, &m.MembershipExpiry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, ErrMemberRepo.Wrap("GetByEmail", "row.Scan", err)
	}

	return &m, nil
}
