// Package members implements the member directory adapter: credential to
// member record, scoped by gym.
package members

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gym-network-toolkit/portal/internal/entity"
	"github.com/gym-network-toolkit/portal/pkg/logger"
	"github.com/gym-network-toolkit/portal/pkg/portalerrors"
)

var ErrMembersUseCase = portalerrors.CreatePortalError("MembersUseCase")

//go:generate mockgen -source=usecase.go -destination=../../mocks/members_mocks.go -package=mocks

// Repository reads member records from the external member store.
type Repository interface {
	GetByEmail(ctx context.Context, email, gymID string) (*entity.Member, error)
}

// GymResolver maps a portal gym code to the gym record.
type GymResolver interface {
	GetByCode(ctx context.Context, code string) (*entity.Gym, error)
}

// UseCase -.
type UseCase struct {
	repo Repository
	gyms GymResolver
	log  logger.Interface
}

// New -.
func New(repo Repository, gyms GymResolver, log logger.Interface) *UseCase {
	return &UseCase{
		repo: repo,
		gyms: gyms,
		log:  log,
	}
}

// Authenticate resolves a credential to a member. It returns nil for every
// credential-shaped failure (unknown email, wrong password, cross-tenant
// mismatch) so callers cannot distinguish them; an error means the
// directory itself failed. The reasons are still logged here.
func (uc *UseCase) Authenticate(ctx context.Context, email, password, gymCode string) (*entity.Member, error) {
	gymID := ""

	if gymCode != "" {
		gym, err := uc.gyms.GetByCode(ctx, gymCode)
		if err != nil {
			return nil, ErrMembersUseCase.Wrap("Authenticate", "gyms.GetByCode", err)
		}

		if gym == nil {
			uc.log.Debug("members - Authenticate - unknown gym code %s", gymCode)

			return nil, nil
		}

		gymID = gym.ID
	}

	member, err := uc.repo.GetByEmail(ctx, email, gymID)
	if err != nil {
		return nil, ErrMembersUseCase.Wrap("Authenticate", "repo.GetByEmail", err)
	}

	if member == nil {
		uc.log.Debug("members - Authenticate - no member for %s", email)

		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		uc.log.Debug("members - Authenticate - password mismatch for %s", email)

		return nil, nil
	}

	return member, nil
}
