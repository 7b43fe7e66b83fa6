package portal

import (
	"context"
	"time"

	"github.com/gym-network-toolkit/portal/internal/entity"
	"github.com/gym-network-toolkit/portal/internal/entity/dto/v1"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/portal_mocks.go -package=mocks

type (
	// Feature is the portal surface consumed by the HTTP controllers.
	Feature interface {
		StartPortal(ctx context.Context, mac, ip, userAgent, redirectURL, gymCode string) (*entity.PortalSession, dto.GymInfo, error)
		Authenticate(ctx context.Context, req *dto.AuthRequest) dto.AuthResponse
		CheckSession(ctx context.Context, sessionID string) dto.SessionStatusResponse
		Logout(ctx context.Context, sessionID string) dto.LogoutResponse
		Disconnect(ctx context.Context, sessionID string) dto.LogoutResponse
		ListSessions(ctx context.Context, gymID string) ([]dto.AdminSession, error)
	}

	// Enforcer is the network enforcement adapter backed by the gym's
	// router. Grants fail closed; revokes and usage reads are best effort
	// at the call sites.
	Enforcer interface {
		GrantAccess(ctx context.Context, mac, ip string, duration time.Duration, downloadMbps, uploadMbps int) error
		RevokeAccess(ctx context.Context, mac string) error
		GetUsage(ctx context.Context, mac string) (entity.DataUsage, error)
	}

	// MemberDirectory resolves a credential to a member record, nil when
	// the credential does not resolve for any reason.
	MemberDirectory interface {
		Authenticate(ctx context.Context, email, password, gymCode string) (*entity.Member, error)
	}

	// GymDirectory reads gym branding records.
	GymDirectory interface {
		GetByID(ctx context.Context, id string) (*entity.Gym, error)
		GetByCode(ctx context.Context, code string) (*entity.Gym, error)
	}

	// UsageRecorder appends billing entries.
	UsageRecorder interface {
		Insert(ctx context.Context, record *entity.UsageRecord) error
	}
)
