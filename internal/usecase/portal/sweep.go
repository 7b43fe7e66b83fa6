package portal

import (
	"context"
	"time"

	"github.com/gym-network-toolkit/portal/internal/entity"
)

// StartSweep launches the background reconciliation loop. It revokes and
// marks sessions whose end time passed without a client-driven check, so
// devices that simply walked out of range still lose access on schedule.
func (uc *UseCase) StartSweep(ctx context.Context) func() {
	done := make(chan struct{})

	go uc.sweepLoop(ctx, done)

	return func() { close(done) }
}

func (uc *UseCase) sweepLoop(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(uc.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			reclaimed, err := uc.SweepOnce(ctx)
			if err != nil {
				uc.log.Error(ErrPortalUseCase.Wrap("sweepLoop", "SweepOnce", err))

				continue
			}

			if reclaimed > 0 {
				uc.log.Info("portal - sweep reclaimed %d expired sessions", reclaimed)
			}
		}
	}
}

// SweepOnce expires every active session past its end time and returns how
// many were reclaimed. Each session is revoked at most once: the keyed lock
// plus the status re-read keep a concurrent check or logout from doubling
// the revoke.
func (uc *UseCase) SweepOnce(ctx context.Context) (int, error) {
	all, err := uc.store.List(ctx)
	if err != nil {
		return 0, err
	}

	now := uc.now()
	reclaimed := 0

	for _, candidate := range all {
		if candidate.Status != entity.SessionActive || !candidate.IsExpired(now) {
			continue
		}

		unlock := uc.locks.lock(candidate.ID)

		session, err := uc.store.Get(ctx, candidate.ID)
		if err != nil || session == nil || session.Status != entity.SessionActive || !session.IsExpired(now) {
			unlock()

			continue
		}

		uc.expireSession(ctx, session, "sweep")
		portalSweepReclaimedTotal.Inc()
		reclaimed++

		unlock()
	}

	return reclaimed, nil
}
