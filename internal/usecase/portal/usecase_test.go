package portal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/gym-network-toolkit/portal/config"
	"github.com/gym-network-toolkit/portal/internal/entity"
	"github.com/gym-network-toolkit/portal/internal/entity/dto/v1"
	infra "github.com/gym-network-toolkit/portal/internal/infrastructure/sessions"
	"github.com/gym-network-toolkit/portal/internal/mocks"
	"github.com/gym-network-toolkit/portal/internal/usecase/portal"
	"github.com/gym-network-toolkit/portal/internal/usecase/sessions"
	"github.com/gym-network-toolkit/portal/pkg/logger"
)

var errTest = errors.New("test error")

func testConfig() *config.Config {
	return &config.Config{
		Portal: config.Portal{
			BootstrapWindow: 5 * time.Minute,
			SweepInterval:   5 * time.Minute,
			RedirectURL:     "http://www.google.com",
			GymID:           "gym-1",
		},
		Tiers: config.Tiers{
			Basic:   config.Tier{DurationMinutes: 120, DownloadMbps: 10, UploadMbps: 5},
			Premium: config.Tier{DurationMinutes: 480, DownloadMbps: 50, UploadMbps: 20},
			VIP:     config.Tier{DurationMinutes: 1440, DownloadMbps: 100, UploadMbps: 50},
		},
	}
}

type portalTest struct {
	uc        *portal.UseCase
	store     *infra.InMemoryRepository
	enforcer  *mocks.MockEnforcer
	directory *mocks.MockMemberDirectory
	gyms      *mocks.MockGymDirectory
	usage     *mocks.MockUsageRecorder
}

func initPortalTest(t *testing.T) *portalTest {
	t.Helper()

	mockCtl := gomock.NewController(t)

	store := infra.NewInMemoryRepository(time.Hour)
	t.Cleanup(store.Stop)

	p := &portalTest{
		store:     store,
		enforcer:  mocks.NewMockEnforcer(mockCtl),
		directory: mocks.NewMockMemberDirectory(mockCtl),
		gyms:      mocks.NewMockGymDirectory(mockCtl),
		usage:     mocks.NewMockUsageRecorder(mockCtl),
	}

	p.uc = portal.New(store, p.enforcer, p.directory, p.gyms, p.usage, logger.New("error"), testConfig())

	return p
}

func activeMember(membershipType entity.MembershipType) *entity.Member {
	return &entity.Member{
		ID:               "member-1",
		GymID:            "gym-1",
		Name:             "Ana Torres",
		Email:            "ana@example.com",
		MembershipType:   membershipType,
		MembershipActive: true,
		MembershipExpiry: time.Now().Add(30 * 24 * time.Hour),
	}
}

// preAuthSession seeds a bootstrap session directly in the store.
func (p *portalTest) preAuthSession(t *testing.T, id string) *entity.PortalSession {
	t.Helper()

	now := time.Now()
	session := &entity.PortalSession{
		ID:          id,
		GymID:       "gym-1",
		MACAddress:  "AA:BB:CC:DD:EE:FF",
		IPAddress:   "10.5.50.23",
		RedirectURL: "http://www.google.com",
		StartTime:   now,
		EndTime:     now.Add(5 * time.Minute),
		Status:      entity.SessionActive,
	}
	require.NoError(t, p.store.Create(context.Background(), session))

	return session
}

func TestStartPortal(t *testing.T) {
	t.Parallel()

	t.Run("missing params", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		_, _, err := p.uc.StartPortal(context.Background(), "", "10.5.50.23", "", "", "")

		var notValidErr dto.NotValidError

		require.ErrorAs(t, err, &notValidErr)
	})

	t.Run("creates pre-auth session with bootstrap window", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		p.gyms.EXPECT().GetByID(gomock.Any(), "gym-1").
			Return(&entity.Gym{ID: "gym-1", Name: "Iron Temple", WelcomeMessage: "Hola"}, nil)

		session, gym, err := p.uc.StartPortal(context.Background(), "AA:BB:CC:DD:EE:FF", "10.5.50.23", "Mozilla/5.0", "", "")

		require.NoError(t, err)
		require.NotEmpty(t, session.ID)
		require.True(t, session.IsPreAuth())
		require.Equal(t, entity.SessionActive, session.Status)
		require.Equal(t, "gym-1", session.GymID)
		require.Equal(t, "http://www.google.com", session.RedirectURL)
		require.WithinDuration(t, time.Now().Add(5*time.Minute), session.EndTime, time.Second)
		require.Equal(t, "Iron Temple", gym.Name)

		stored, err := p.store.Get(context.Background(), session.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("branding falls back when gym record missing", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		p.gyms.EXPECT().GetByCode(gomock.Any(), "unknown").Return(nil, nil)

		_, gym, err := p.uc.StartPortal(context.Background(), "AA:BB:CC:DD:EE:FF", "10.5.50.23", "", "", "unknown")

		require.NoError(t, err)
		require.NotEmpty(t, gym.Name)
		require.NotEmpty(t, gym.WelcomeMessage)
	})
}

func TestStartPortal_SupersedesActiveMAC(t *testing.T) {
	t.Parallel()

	p := initPortalTest(t)

	// Authorized session already bound to the MAC.
	prior := p.preAuthSession(t, "session-old")
	prior.UserID = "member-1"
	prior.Tier = entity.MembershipBasic
	prior.EndTime = time.Now().Add(time.Hour)
	require.NoError(t, p.store.Update(context.Background(), prior))

	p.enforcer.EXPECT().RevokeAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF").Return(nil)
	p.gyms.EXPECT().GetByID(gomock.Any(), "gym-1").Return(&entity.Gym{ID: "gym-1", Name: "Iron Temple"}, nil)

	session, _, err := p.uc.StartPortal(context.Background(), "AA:BB:CC:DD:EE:FF", "10.5.50.99", "", "", "")

	require.NoError(t, err)
	require.NotEqual(t, prior.ID, session.ID)

	old, err := p.store.Get(context.Background(), prior.ID)
	require.NoError(t, err)
	require.Equal(t, entity.SessionDisconnected, old.Status)
}

// A re-bootstrap for a MAC whose session is being promoted concurrently must
// wait for the login to finish and then revoke the confirmed grant, never
// overwrite the promoted session with its stale pre-auth snapshot.
func TestStartPortal_SupersedeDuringAuthenticate(t *testing.T) {
	t.Parallel()

	p := initPortalTest(t)
	p.preAuthSession(t, "session-1")

	inDirectory := make(chan struct{})
	release := make(chan struct{})

	p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret", "").DoAndReturn(
		func(context.Context, string, string, string) (*entity.Member, error) {
			close(inDirectory)
			<-release

			return activeMember(entity.MembershipBasic), nil
		})
	p.enforcer.EXPECT().
		GrantAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF", "10.5.50.23", 120*time.Minute, 10, 5).
		Return(nil)
	p.usage.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	p.gyms.EXPECT().GetByID(gomock.Any(), "gym-1").Return(&entity.Gym{ID: "gym-1", Name: "Iron Temple"}, nil)

	// Exactly one revoke: the supersede retiring the promoted session.
	p.enforcer.EXPECT().RevokeAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF").Return(nil).Times(1)

	authDone := make(chan dto.AuthResponse, 1)

	go func() {
		authDone <- p.uc.Authenticate(context.Background(), &dto.AuthRequest{
			SessionID: "session-1", Email: "ana@example.com", Password: "secret",
		})
	}()

	<-inDirectory

	type bootstrapResult struct {
		session *entity.PortalSession
		err     error
	}

	bootstrapDone := make(chan bootstrapResult, 1)

	go func() {
		session, _, err := p.uc.StartPortal(context.Background(), "AA:BB:CC:DD:EE:FF", "10.5.50.23", "", "", "")
		bootstrapDone <- bootstrapResult{session, err}
	}()

	// Let the bootstrap read the MAC index and park on the session lock
	// before the login resumes.
	time.Sleep(50 * time.Millisecond)
	close(release)

	result := <-authDone
	require.True(t, result.Success)

	bootstrap := <-bootstrapDone
	require.NoError(t, bootstrap.err)
	require.NotEqual(t, "session-1", bootstrap.session.ID)

	old, err := p.store.Get(context.Background(), "session-1")
	require.NoError(t, err)
	require.Equal(t, entity.SessionDisconnected, old.Status)
	require.Equal(t, "member-1", old.UserID)

	// Nothing left for the sweep: router and store already converged.
	reclaimed, err := p.uc.SweepOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, reclaimed)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seed     bool
		mock     func(p *portalTest)
		email    string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "unknown session",
			seed:     false,
			mock:     func(_ *portalTest) {},
			email:    "ana@example.com",
			wantCode: dto.CodeSessionExpired,
			wantMsg:  "sesión expirada",
		},
		{
			name: "bad credentials",
			seed: true,
			mock: func(p *portalTest) {
				p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong", "").Return(nil, nil)
			},
			email:    "ana@example.com",
			wantCode: dto.CodeAuthFailed,
			wantMsg:  "credenciales inválidas",
		},
		{
			name: "directory failure",
			seed: true,
			mock: func(p *portalTest) {
				p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong", "").Return(nil, errTest)
			},
			email:    "ana@example.com",
			wantCode: dto.CodeAuthFailed,
			wantMsg:  "credenciales inválidas",
		},
		{
			name: "inactive membership",
			seed: true,
			mock: func(p *portalTest) {
				member := activeMember(entity.MembershipBasic)
				member.MembershipActive = false
				p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong", "").Return(member, nil)
			},
			email:    "ana@example.com",
			wantCode: dto.CodeAuthFailed,
			wantMsg:  "membresía inactiva",
		},
		{
			name: "expired membership",
			seed: true,
			mock: func(p *portalTest) {
				member := activeMember(entity.MembershipBasic)
				member.MembershipExpiry = time.Now().Add(-time.Hour)
				p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong", "").Return(member, nil)
			},
			email:    "ana@example.com",
			wantCode: dto.CodeAuthFailed,
			wantMsg:  "membresía inactiva",
		},
		{
			name: "member from another gym",
			seed: true,
			mock: func(p *portalTest) {
				member := activeMember(entity.MembershipBasic)
				member.GymID = "gym-2"
				p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong", "").Return(member, nil)
			},
			email:    "ana@example.com",
			wantCode: dto.CodeAuthFailed,
			wantMsg:  "credenciales inválidas",
		},
		{
			name: "router grant fails closed",
			seed: true,
			mock: func(p *portalTest) {
				p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "wrong", "").
					Return(activeMember(entity.MembershipBasic), nil)
				p.enforcer.EXPECT().
					GrantAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF", "10.5.50.23", 120*time.Minute, 10, 5).
					Return(errTest)
			},
			email:    "ana@example.com",
			wantCode: dto.CodeAuthFailed,
			wantMsg:  "error configurando acceso a Internet",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := initPortalTest(t)

			sessionID := "missing"
			if tc.seed {
				sessionID = "session-1"
				p.preAuthSession(t, sessionID)
			}

			tc.mock(p)

			result := p.uc.Authenticate(context.Background(), &dto.AuthRequest{
				SessionID: sessionID,
				Email:     tc.email,
				Password:  "wrong",
			})

			require.False(t, result.Success)
			require.Equal(t, tc.wantCode, result.Code)
			require.Equal(t, tc.wantMsg, result.Error)
		})
	}
}

func TestAuthenticate_GrantFailureLeavesPreAuth(t *testing.T) {
	t.Parallel()

	p := initPortalTest(t)
	p.preAuthSession(t, "session-1")

	p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret", "").
		Return(activeMember(entity.MembershipBasic), nil)
	p.enforcer.EXPECT().GrantAccess(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errTest)

	result := p.uc.Authenticate(context.Background(), &dto.AuthRequest{
		SessionID: "session-1", Email: "ana@example.com", Password: "secret",
	})

	require.False(t, result.Success)

	session, err := p.store.Get(context.Background(), "session-1")
	require.NoError(t, err)
	require.True(t, session.IsPreAuth())
	require.Equal(t, entity.SessionActive, session.Status)
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		tier         entity.MembershipType
		wantMinutes  int
		wantDown     int
		wantUp       int
		wantDuration time.Duration
	}{
		{"basic", entity.MembershipBasic, 120, 10, 5, 120 * time.Minute},
		{"premium", entity.MembershipPremium, 480, 50, 20, 480 * time.Minute},
		{"vip", entity.MembershipVIP, 1440, 100, 50, 1440 * time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := initPortalTest(t)
			p.preAuthSession(t, "session-1")

			member := activeMember(tc.tier)

			p.directory.EXPECT().Authenticate(gomock.Any(), "ana@example.com", "secret", "").Return(member, nil)
			p.enforcer.EXPECT().
				GrantAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF", "10.5.50.23", tc.wantDuration, tc.wantDown, tc.wantUp).
				Return(nil)
			p.usage.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, record *entity.UsageRecord) error {
					require.Equal(t, "gym-1", record.GymID)
					require.Equal(t, "member-1", record.MemberID)
					require.Equal(t, "session-1", record.SessionID)
					require.Equal(t, tc.wantMinutes, record.DurationMinutes)

					return nil
				})

			result := p.uc.Authenticate(context.Background(), &dto.AuthRequest{
				SessionID: "session-1", Email: "ana@example.com", Password: "secret",
			})

			require.True(t, result.Success)
			require.Equal(t, "http://www.google.com", result.RedirectURL)
			require.Equal(t, string(tc.tier), result.Member.MembershipType)
			require.Equal(t, tc.wantMinutes, result.Session.DurationMinutes)
			require.WithinDuration(t, time.Now().Add(tc.wantDuration), result.Session.EndTime, time.Second)

			session, err := p.store.Get(context.Background(), "session-1")
			require.NoError(t, err)
			require.Equal(t, "member-1", session.UserID)
			require.Equal(t, tc.tier, session.Tier)
			require.False(t, session.IsPreAuth())
		})
	}
}

func TestCheckSession(t *testing.T) {
	t.Parallel()

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		result := p.uc.CheckSession(context.Background(), "missing")

		require.False(t, result.Valid)
		require.Equal(t, dto.CodeNoSession, result.Code)
	})

	t.Run("expired authorized session is revoked", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		session := p.preAuthSession(t, "session-1")
		session.UserID = "member-1"
		session.EndTime = time.Now().Add(-time.Minute)
		require.NoError(t, p.store.Update(context.Background(), session))

		p.enforcer.EXPECT().RevokeAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF").Return(nil)

		result := p.uc.CheckSession(context.Background(), "session-1")

		require.False(t, result.Valid)
		require.Equal(t, dto.CodeSessionExpired, result.Code)
		require.Equal(t, "sesión expirada", result.Error)

		stored, err := p.store.Get(context.Background(), "session-1")
		require.NoError(t, err)
		require.Equal(t, entity.SessionExpired, stored.Status)
	})

	t.Run("active authorized session refreshes usage", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		session := p.preAuthSession(t, "session-1")
		session.UserID = "member-1"
		session.EndTime = time.Now().Add(90*time.Minute + 30*time.Second)
		require.NoError(t, p.store.Update(context.Background(), session))

		p.enforcer.EXPECT().GetUsage(gomock.Any(), "AA:BB:CC:DD:EE:FF").
			Return(entity.DataUsage{DownloadMB: 42.5, UploadMB: 7.25}, nil)

		result := p.uc.CheckSession(context.Background(), "session-1")

		require.True(t, result.Valid)
		require.Equal(t, 90, result.TimeRemaining)
		require.InDelta(t, 42.5, result.DataUsage.DownloadMB, 0.001)
		require.InDelta(t, 7.25, result.DataUsage.UploadMB, 0.001)
	})

	t.Run("usage read failure keeps last known counters", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		session := p.preAuthSession(t, "session-1")
		session.UserID = "member-1"
		session.EndTime = time.Now().Add(time.Hour)
		session.DataUsed = entity.DataUsage{DownloadMB: 10, UploadMB: 2}
		require.NoError(t, p.store.Update(context.Background(), session))

		p.enforcer.EXPECT().GetUsage(gomock.Any(), "AA:BB:CC:DD:EE:FF").
			Return(entity.DataUsage{}, errTest)

		result := p.uc.CheckSession(context.Background(), "session-1")

		require.True(t, result.Valid)
		require.InDelta(t, 10, result.DataUsage.DownloadMB, 0.001)
		require.InDelta(t, 2, result.DataUsage.UploadMB, 0.001)
	})

	t.Run("pre-auth session skips usage read", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)
		p.preAuthSession(t, "session-1")

		result := p.uc.CheckSession(context.Background(), "session-1")

		require.True(t, result.Valid)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		result := p.uc.Logout(context.Background(), "missing")

		require.False(t, result.Success)
	})

	t.Run("authorized session revoked and removed", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		session := p.preAuthSession(t, "session-1")
		session.UserID = "member-1"
		session.EndTime = time.Now().Add(time.Hour)
		require.NoError(t, p.store.Update(context.Background(), session))

		p.enforcer.EXPECT().RevokeAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF").Return(nil)

		result := p.uc.Logout(context.Background(), "session-1")

		require.True(t, result.Success)

		_, err := p.store.Get(context.Background(), "session-1")
		require.ErrorIs(t, err, sessions.ErrSessionNotFound)
	})

	t.Run("revoke failure still logs out", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)

		session := p.preAuthSession(t, "session-1")
		session.UserID = "member-1"
		session.EndTime = time.Now().Add(time.Hour)
		require.NoError(t, p.store.Update(context.Background(), session))

		p.enforcer.EXPECT().RevokeAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF").Return(errTest)

		result := p.uc.Logout(context.Background(), "session-1")

		require.True(t, result.Success)
	})

	t.Run("pre-auth session removed without revoke", func(t *testing.T) {
		t.Parallel()

		p := initPortalTest(t)
		p.preAuthSession(t, "session-1")

		result := p.uc.Logout(context.Background(), "session-1")

		require.True(t, result.Success)
	})
}

func TestSweepOnce(t *testing.T) {
	t.Parallel()

	p := initPortalTest(t)

	// Expired authorized session: revoked and marked.
	expired := p.preAuthSession(t, "session-expired")
	expired.UserID = "member-1"
	expired.EndTime = time.Now().Add(-time.Minute)
	require.NoError(t, p.store.Update(context.Background(), expired))

	// Expired pre-auth session: marked, no grant to revoke.
	stale := &entity.PortalSession{
		ID:         "session-stale",
		GymID:      "gym-1",
		MACAddress: "11:22:33:44:55:66",
		IPAddress:  "10.5.50.24",
		StartTime:  time.Now().Add(-10 * time.Minute),
		EndTime:    time.Now().Add(-5 * time.Minute),
		Status:     entity.SessionActive,
	}
	require.NoError(t, p.store.Create(context.Background(), stale))

	// Still-valid session: untouched.
	live := &entity.PortalSession{
		ID:         "session-live",
		GymID:      "gym-1",
		UserID:     "member-2",
		MACAddress: "77:88:99:AA:BB:CC",
		IPAddress:  "10.5.50.25",
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
		Status:     entity.SessionActive,
	}
	require.NoError(t, p.store.Create(context.Background(), live))

	p.enforcer.EXPECT().RevokeAccess(gomock.Any(), "AA:BB:CC:DD:EE:FF").Return(nil).Times(1)

	reclaimed, err := p.uc.SweepOnce(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, reclaimed)

	got, err := p.store.Get(context.Background(), "session-expired")
	require.NoError(t, err)
	require.Equal(t, entity.SessionExpired, got.Status)

	got, err = p.store.Get(context.Background(), "session-stale")
	require.NoError(t, err)
	require.Equal(t, entity.SessionExpired, got.Status)

	got, err = p.store.Get(context.Background(), "session-live")
	require.NoError(t, err)
	require.Equal(t, entity.SessionActive, got.Status)

	// A second pass finds nothing left to reclaim.
	reclaimed, err = p.uc.SweepOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, reclaimed)
}

func TestListSessions(t *testing.T) {
	t.Parallel()

	p := initPortalTest(t)

	p.preAuthSession(t, "session-1")

	other := &entity.PortalSession{
		ID:         "session-2",
		GymID:      "gym-2",
		MACAddress: "11:22:33:44:55:66",
		IPAddress:  "10.5.60.10",
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(5 * time.Minute),
		Status:     entity.SessionActive,
	}
	require.NoError(t, p.store.Create(context.Background(), other))

	all, err := p.uc.ListSessions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := p.uc.ListSessions(context.Background(), "gym-2")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "session-2", filtered[0].ID)
}
