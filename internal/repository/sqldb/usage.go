package sqldb

import (
	"context"

	"github.com/gym-network-toolkit/portal/internal/entity"
	ucsqldb "github.com/gym-network-toolkit/portal/internal/usecase/sqldb"
	"github.com/gym-network-toolkit/portal/pkg/db"
	"github.com/gym-network-toolkit/portal/pkg/logger"
	"github.com/gym-network-toolkit/portal/pkg/portalerrors"
)

var ErrUsageRepo = ucsqldb.DatabaseError{Portal: portalerrors.CreatePortalError("UsageRepo")}

// UsageRepo appends billing entries. Nothing here updates or deletes;
// reporting runs elsewhere.
type UsageRepo struct {
	*db.SQL
	log logger.Interface
}

// NewUsageRepo -.
func NewUsageRepo(database *db.SQL, log logger.Interface) *UsageRepo {
	return &UsageRepo{database, log}
}

// Insert appends one usage record.
func (r *UsageRepo) Insert(ctx context.Context, record *entity.UsageRecord) error {
	sqlQuery, args, err := r.Builder.
		Insert("usage_records").
		Columns("id", "gym_id", "member_id", "session_id", "tier", "duration_minutes", "created_at").
		Values(record.ID, record.GymID, record.MemberID, record.SessionID, string(record.Tier), record.DurationMinutes, record.CreatedAt).
		ToSql()
	if err != nil {
		return ErrUsageRepo.Wrap("Insert", "builder.ToSql", err)
	}

	_, err = r.Pool.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return ErrUsageRepo.Wrap("Insert", "Pool.ExecContext", err)
	}

	return nil
}
