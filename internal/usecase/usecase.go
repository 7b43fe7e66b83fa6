// Package usecase wires the business-layer use cases to their adapters.
package usecase

import (
	"github.com/gym-network-toolkit/portal/config"
	"github.com/gym-network-toolkit/portal/internal/cache"
	"github.com/gym-network-toolkit/portal/internal/repository/sqldb"
	"github.com/gym-network-toolkit/portal/internal/usecase/members"
	"github.com/gym-network-toolkit/portal/internal/usecase/portal"
	"github.com/gym-network-toolkit/portal/internal/usecase/sessions"
	"github.com/gym-network-toolkit/portal/pkg/db"
	"github.com/gym-network-toolkit/portal/pkg/logger"
)

// Usecases aggregates the use cases exposed to the controllers.
type Usecases struct {
	Portal  *portal.UseCase
	Members *members.UseCase
}

// NewUseCases builds the repository and use case graph. The session store
// and the enforcer are injected because their construction is environment
// dependent (memory vs Redis, router credentials from Vault or config).
func NewUseCases(database *db.SQL, store sessions.Repository, enforcer portal.Enforcer, log logger.Interface, cfg *config.Config) *Usecases {
	gymRepo := sqldb.NewGymRepo(database, log)
	memberRepo := sqldb.NewMemberRepo(database, log)
	usageRepo := sqldb.NewUsageRepo(database, log)

	gyms := cache.NewGymDirectory(gymRepo, cache.New(cfg.Portal.BrandingTTL))

	memberUC := members.New(memberRepo, gyms, log)
	portalUC := portal.New(store, enforcer, memberUC, gyms, usageRepo, log, cfg)

	return &Usecases{
		Portal:  portalUC,
		Members: memberUC,
	}
}
