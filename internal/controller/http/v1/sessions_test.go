package v1_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	v1 "github.com/gym-network-toolkit/portal/internal/controller/http/v1"
	"github.com/gym-network-toolkit/portal/internal/entity/dto/v1"
	"github.com/gym-network-toolkit/portal/internal/mocks"
	"github.com/gym-network-toolkit/portal/pkg/logger"
)

func initSessionRoutes(t *testing.T) (*gin.Engine, *mocks.MockFeature) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	feature := mocks.NewMockFeature(mockCtl)

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	v1.NewSessionRoutes(engine.Group("/api/v1"), feature, logger.New("error"))

	return engine, feature
}

func TestListSessionsRoute(t *testing.T) {
	t.Parallel()

	t.Run("returns sessions", func(t *testing.T) {
		t.Parallel()

		engine, feature := initSessionRoutes(t)

		feature.EXPECT().ListSessions(gomock.Any(), "gym-1").
			Return([]dto.AdminSession{{ID: "s1", GymID: "gym-1"}}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions?gymId=gym-1", http.NoBody)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var items []dto.AdminSession
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		require.Equal(t, "s1", items[0].ID)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		engine, feature := initSessionRoutes(t)

		feature.EXPECT().ListSessions(gomock.Any(), "").Return(nil, errors.New("store down"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", http.NoBody)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDisconnectRoute(t *testing.T) {
	t.Parallel()

	t.Run("disconnects", func(t *testing.T) {
		t.Parallel()

		engine, feature := initSessionRoutes(t)

		feature.EXPECT().Disconnect(gomock.Any(), "s1").Return(dto.LogoutResponse{Success: true})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/s1", http.NoBody)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		engine, feature := initSessionRoutes(t)

		feature.EXPECT().Disconnect(gomock.Any(), "missing").Return(dto.LogoutResponse{Success: false})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/missing", http.NoBody)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
