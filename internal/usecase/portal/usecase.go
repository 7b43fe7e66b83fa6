// Package portal implements the captive portal session manager: portal
// bootstrap, authentication, session validation, logout, and the
// background expiry sweep.
package portal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gym-network-toolkit/portal/config"
	"github.com/gym-network-toolkit/portal/internal/entity"
	"github.com/gym-network-toolkit/portal/internal/entity/dto/v1"
	"github.com/gym-network-toolkit/portal/internal/usecase/sessions"
	"github.com/gym-network-toolkit/portal/pkg/logger"
	"github.com/gym-network-toolkit/portal/pkg/portalerrors"
)

var (
	ErrPortalUseCase = portalerrors.CreatePortalError("PortalUseCase")
	ErrValidation    = dto.NotValidError{Portal: ErrPortalUseCase.AddMessage("parámetros requeridos faltantes")}
)

// Outward-facing messages. Short, localizable, never technical.
const (
	msgInvalidCredentials = "credenciales inválidas"
	msgInactiveMembership = "membresía inactiva"
	msgGrantFailed        = "error configurando acceso a Internet"
	msgSessionExpired     = "sesión expirada"
	msgNoSession          = "sesión no encontrada"
)

// Branding defaults when the gym record is missing.
const (
	defaultGymName    = "Gym WiFi"
	defaultGymWelcome = "Bienvenido. Inicia sesión con tu cuenta de miembro."
)

// UseCase orchestrates the session lifecycle. All session mutations go
// through the store; adapter calls never run while store locks are held,
// and per-session interleavings are serialized with a keyed lock.
type UseCase struct {
	store     sessions.Repository
	enforcer  Enforcer
	directory MemberDirectory
	gyms      GymDirectory
	usage     UsageRecorder
	log       logger.Interface

	tiers           config.Tiers
	bootstrapWindow time.Duration
	sweepInterval   time.Duration
	redirectURL     string
	defaultGymID    string

	locks keyedLocks
	now   func() time.Time
}

// New -.
func New(store sessions.Repository, enforcer Enforcer, directory MemberDirectory, gyms GymDirectory, usage UsageRecorder, log logger.Interface, cfg *config.Config) *UseCase {
	return &UseCase{
		store:           store,
		enforcer:        enforcer,
		directory:       directory,
		gyms:            gyms,
		usage:           usage,
		log:             log,
		tiers:           cfg.Tiers,
		bootstrapWindow: cfg.Portal.BootstrapWindow,
		sweepInterval:   cfg.Portal.SweepInterval,
		redirectURL:     cfg.Portal.RedirectURL,
		defaultGymID:    cfg.Portal.GymID,
		now:             time.Now,
	}
}

// StartPortal creates a pre-auth session for a device. A prior session for
// the same MAC is superseded: the router only redirects devices it is not
// currently passing, so an existing grant is stale and gets revoked.
func (uc *UseCase) StartPortal(ctx context.Context, mac, ip, userAgent, redirectURL, gymCode string) (*entity.PortalSession, dto.GymInfo, error) {
	if mac == "" || ip == "" {
		return nil, dto.GymInfo{}, ErrValidation
	}

	uc.supersede(ctx, mac)

	gym, gymID := uc.resolveGym(ctx, gymCode)

	if redirectURL == "" {
		redirectURL = uc.redirectURL
	}

	now := uc.now()
	session := &entity.PortalSession{
		ID:          uuid.New().String(),
		GymID:       gymID,
		MACAddress:  mac,
		IPAddress:   ip,
		UserAgent:   userAgent,
		RedirectURL: redirectURL,
		StartTime:   now,
		EndTime:     now.Add(uc.bootstrapWindow),
		Status:      entity.SessionActive,
	}

	if err := uc.store.Create(ctx, session); err != nil {
		return nil, dto.GymInfo{}, ErrPortalUseCase.Wrap("StartPortal", "store.Create", err)
	}

	return session, gym, nil
}

// supersede retires any session currently bound to the MAC. Pre-auth
// leftovers are dropped; an authorized one is revoked and disconnected.
func (uc *UseCase) supersede(ctx context.Context, mac string) {
	prior, err := uc.store.GetByMAC(ctx, mac)
	if err != nil || prior == nil {
		return
	}

	unlock := uc.locks.lock(prior.ID)
	defer unlock()

	// An in-flight authenticate may have promoted the session between the
	// MAC lookup and the lock. Re-read so a confirmed grant is revoked
	// instead of silently overwritten.
	prior, err = uc.store.Get(ctx, prior.ID)
	if err != nil || prior == nil || prior.Status != entity.SessionActive {
		return
	}

	if !prior.IsPreAuth() {
		if err := uc.enforcer.RevokeAccess(ctx, prior.MACAddress); err != nil {
			uc.log.Warn("portal - supersede - revoke failed for %s: %s", prior.MACAddress, err)
		}

		portalRevokesTotal.WithLabelValues("supersede").Inc()
		portalActiveSessions.Dec()
	}

	prior.Disconnect()

	if err := uc.store.Update(ctx, prior); err != nil {
		uc.log.Warn("portal - supersede - update failed for %s: %s", prior.ID, err)
	}
}

// resolveGym picks the tenant for a bootstrap and applies branding
// defaults when the record is unavailable. Branding failure never blocks
// the portal.
func (uc *UseCase) resolveGym(ctx context.Context, gymCode string) (dto.GymInfo, string) {
	var (
		gym *entity.Gym
		err error
	)

	switch {
	case gymCode != "":
		gym, err = uc.gyms.GetByCode(ctx, gymCode)
	case uc.defaultGymID != "":
		gym, err = uc.gyms.GetByID(ctx, uc.defaultGymID)
	}

	if err != nil {
		uc.log.Warn("portal - resolveGym - lookup failed: %s", err)
	}

	if gym == nil {
		return dto.GymInfo{Name: defaultGymName, WelcomeMessage: defaultGymWelcome}, uc.defaultGymID
	}

	info := dto.GymInfo{
		Name:           gym.Name,
		LogoURL:        gym.LogoURL,
		WelcomeMessage: gym.WelcomeMessage,
	}

	if info.Name == "" {
		info.Name = defaultGymName
	}

	if info.WelcomeMessage == "" {
		info.WelcomeMessage = defaultGymWelcome
	}

	return info, gym.ID
}

// Authenticate binds a member to a pre-auth session and grants network
// access. Every failure collapses to a generic response; the distinction
// lives only in logs and metrics. No success is reported unless the
// router confirmed the grant.
func (uc *UseCase) Authenticate(ctx context.Context, req *dto.AuthRequest) dto.AuthResponse {
	unlock := uc.locks.lock(req.SessionID)
	defer unlock()

	session, err := uc.store.Get(ctx, req.SessionID)
	if err != nil || session == nil {
		return authFailure(dto.CodeSessionExpired, msgSessionExpired, "no_session")
	}

	now := uc.now()

	if session.Status != entity.SessionActive || session.IsExpired(now) {
		return authFailure(dto.CodeSessionExpired, msgSessionExpired, "lapsed_session")
	}

	member, err := uc.directory.Authenticate(ctx, req.Email, req.Password, req.GymCode)
	if err != nil {
		uc.log.Error(ErrPortalUseCase.Wrap("Authenticate", "directory.Authenticate", err))

		return authFailure(dto.CodeAuthFailed, msgInvalidCredentials, "directory_error")
	}

	if member == nil {
		return authFailure(dto.CodeAuthFailed, msgInvalidCredentials, "bad_credential")
	}

	if session.GymID != "" && member.GymID != session.GymID {
		return authFailure(dto.CodeAuthFailed, msgInvalidCredentials, "cross_tenant")
	}

	if !member.CanAuthenticate(now) {
		return authFailure(dto.CodeAuthFailed, msgInactiveMembership, "inactive_membership")
	}

	tier, ok := uc.tierFor(member.MembershipType)
	if !ok {
		uc.log.Error("portal - Authenticate - unknown membership type %q for member %s", member.MembershipType, member.ID)

		return authFailure(dto.CodeAuthFailed, msgInvalidCredentials, "unknown_tier")
	}

	duration := accessDuration(tier)

	// Fail closed: an unconfirmed grant leaves the session in pre-auth.
	if err := uc.enforcer.GrantAccess(ctx, session.MACAddress, session.IPAddress, duration, tier.DownloadMbps, tier.UploadMbps); err != nil {
		uc.log.Error(ErrPortalUseCase.Wrap("Authenticate", "enforcer.GrantAccess", err))
		portalGrantFailuresTotal.Inc()

		return authFailure(dto.CodeAuthFailed, msgGrantFailed, "grant_failed")
	}

	authTime := uc.now()
	session.UserID = member.ID
	session.Tier = member.MembershipType
	session.EndTime = authTime.Add(duration)

	if err := uc.store.Update(ctx, session); err != nil {
		// The grant went through but the session cannot be recorded;
		// revoke rather than leave an untracked device online.
		uc.log.Error(ErrPortalUseCase.Wrap("Authenticate", "store.Update", err))

		if revokeErr := uc.enforcer.RevokeAccess(ctx, session.MACAddress); revokeErr != nil {
			uc.log.Error(ErrPortalUseCase.Wrap("Authenticate", "enforcer.RevokeAccess", revokeErr))
		}

		return authFailure(dto.CodeAuthFailed, msgGrantFailed, "store_update_failed")
	}

	portalGrantsTotal.WithLabelValues(string(member.MembershipType)).Inc()
	portalActiveSessions.Inc()

	uc.recordUsage(ctx, session, member, tier.DurationMinutes)

	return dto.AuthResponse{
		Success:     true,
		RedirectURL: session.RedirectURL,
		Member: &dto.MemberInfo{
			Name:           member.Name,
			Email:          member.Email,
			MembershipType: string(member.MembershipType),
		},
		Session: &dto.SessionInfo{
			SessionID:       session.ID,
			EndTime:         session.EndTime,
			DurationMinutes: tier.DurationMinutes,
			DownloadMbps:    tier.DownloadMbps,
			UploadMbps:      tier.UploadMbps,
		},
	}
}

// recordUsage appends the billing entry. Best effort: a failure is logged
// and never fails the authentication that triggered it.
func (uc *UseCase) recordUsage(ctx context.Context, session *entity.PortalSession, member *entity.Member, durationMinutes int) {
	record := &entity.UsageRecord{
		ID:              uuid.New().String(),
		GymID:           session.GymID,
		MemberID:        member.ID,
		SessionID:       session.ID,
		Tier:            member.MembershipType,
		DurationMinutes: durationMinutes,
		CreatedAt:       uc.now(),
	}

	if err := uc.usage.Insert(ctx, record); err != nil {
		uc.log.Error(ErrPortalUseCase.Wrap("recordUsage", "usage.Insert", err))
	}
}

// CheckSession reports validity, remaining minutes, and best-effort data
// usage. An expired session is revoked and marked in place so this final
// check can still explain why.
func (uc *UseCase) CheckSession(ctx context.Context, sessionID string) dto.SessionStatusResponse {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	session, err := uc.store.Get(ctx, sessionID)
	if err != nil || session == nil {
		return dto.SessionStatusResponse{Valid: false, Code: dto.CodeNoSession, Error: msgNoSession}
	}

	if session.Status != entity.SessionActive {
		return dto.SessionStatusResponse{Valid: false, Code: dto.CodeSessionExpired, Error: msgSessionExpired}
	}

	now := uc.now()

	if session.IsExpired(now) {
		uc.expireSession(ctx, session, "check")

		return dto.SessionStatusResponse{Valid: false, Code: dto.CodeSessionExpired, Error: msgSessionExpired}
	}

	if !session.IsPreAuth() {
		// Telemetry is best effort; on failure the last-known counters stand.
		if usage, err := uc.enforcer.GetUsage(ctx, session.MACAddress); err == nil {
			session.DataUsed = usage

			if err := uc.store.Update(ctx, session); err != nil {
				uc.log.Warn("portal - CheckSession - usage update failed for %s: %s", session.ID, err)
			}
		} else {
			uc.log.Debug("portal - CheckSession - usage read failed for %s: %s", session.MACAddress, err)
		}
	}

	return dto.SessionStatusResponse{
		Valid:         true,
		TimeRemaining: session.TimeRemaining(now),
		DataUsage: &dto.DataUsage{
			DownloadMB: session.DataUsed.DownloadMB,
			UploadMB:   session.DataUsed.UploadMB,
		},
	}
}

// Logout revokes access and removes the session. Revocation failure is
// logged but never blocks the logout.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) dto.LogoutResponse {
	return uc.disconnect(ctx, sessionID, "logout")
}

// Disconnect is the admin force-logout; same path as a member logout.
func (uc *UseCase) Disconnect(ctx context.Context, sessionID string) dto.LogoutResponse {
	return uc.disconnect(ctx, sessionID, "admin")
}

func (uc *UseCase) disconnect(ctx context.Context, sessionID, reason string) dto.LogoutResponse {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	session, err := uc.store.Get(ctx, sessionID)
	if err != nil || session == nil {
		return dto.LogoutResponse{Success: false}
	}

	if session.Status == entity.SessionActive && !session.IsPreAuth() {
		if err := uc.enforcer.RevokeAccess(ctx, session.MACAddress); err != nil {
			uc.log.Warn("portal - disconnect - revoke failed for %s: %s", session.MACAddress, err)
		}

		portalRevokesTotal.WithLabelValues(reason).Inc()
		portalActiveSessions.Dec()
	}

	session.Disconnect()

	if err := uc.store.Delete(ctx, sessionID); err != nil {
		uc.log.Warn("portal - disconnect - delete failed for %s: %s", sessionID, err)

		return dto.LogoutResponse{Success: false}
	}

	return dto.LogoutResponse{Success: true}
}

// expireSession revokes (for authorized sessions) and marks the session
// expired in place. Shared by CheckSession and the sweep.
func (uc *UseCase) expireSession(ctx context.Context, session *entity.PortalSession, reason string) {
	if !session.IsPreAuth() {
		if err := uc.enforcer.RevokeAccess(ctx, session.MACAddress); err != nil {
			uc.log.Warn("portal - expireSession - revoke failed for %s: %s", session.MACAddress, err)
		}

		portalRevokesTotal.WithLabelValues(reason).Inc()
		portalActiveSessions.Dec()
	}

	session.Expire()

	if err := uc.store.Update(ctx, session); err != nil {
		uc.log.Warn("portal - expireSession - update failed for %s: %s", session.ID, err)
	}
}

// ListSessions returns the admin view of stored sessions, newest first
// filtering by gym when gymID is non-empty.
func (uc *UseCase) ListSessions(ctx context.Context, gymID string) ([]dto.AdminSession, error) {
	all, err := uc.store.List(ctx)
	if err != nil {
		return nil, ErrPortalUseCase.Wrap("ListSessions", "store.List", err)
	}

	now := uc.now()
	out := make([]dto.AdminSession, 0, len(all))

	for _, session := range all {
		if gymID != "" && session.GymID != gymID {
			continue
		}

		out = append(out, dto.AdminSession{
			ID:            session.ID,
			GymID:         session.GymID,
			UserID:        session.UserID,
			MACAddress:    session.MACAddress,
			IPAddress:     session.IPAddress,
			Tier:          string(session.Tier),
			Status:        string(session.Status),
			StartTime:     session.StartTime,
			EndTime:       session.EndTime,
			TimeRemaining: session.TimeRemaining(now),
			DataUsage: &dto.DataUsage{
				DownloadMB: session.DataUsed.DownloadMB,
				UploadMB:   session.DataUsed.UploadMB,
			},
		})
	}

	return out, nil
}

func authFailure(code, message, reason string) dto.AuthResponse {
	portalAuthFailuresTotal.WithLabelValues(reason).Inc()

	return dto.AuthResponse{
		Success: false,
		Error:   message,
		Code:    code,
	}
}
