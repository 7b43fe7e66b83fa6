package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gym-network-toolkit/portal/config"
	v1 "github.com/gym-network-toolkit/portal/internal/controller/http/v1"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			AdminUsername: "admin",
			AdminPassword: "swordfish",
			JWTKey:        "test-jwt-key",
			JWTExpiration: time.Hour,
		},
	}
}

func initLoginEngine(t *testing.T) (*gin.Engine, *v1.LoginRoute) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	login := v1.NewLoginRoute(authConfig())
	engine.POST("/api/v1/authorize", login.Login)
	engine.GET("/api/v1/ping", login.JWTAuthMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	return engine, login
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues token for valid credentials", func(t *testing.T) {
		t.Parallel()

		engine, _ := initLoginEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"admin","password":"swordfish"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		// The issued token passes the middleware.
		w2 := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody)
		req2.Header.Set("Authorization", "Bearer "+resp.Token)
		engine.ServeHTTP(w2, req2)

		require.Equal(t, http.StatusOK, w2.Code)
	})

	t.Run("rejects bad credentials", func(t *testing.T) {
		t.Parallel()

		engine, _ := initLoginEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"admin","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		engine, _ := initLoginEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
			strings.NewReader(`{"username":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing token", func(t *testing.T) {
		t.Parallel()

		engine, _ := initLoginEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		t.Parallel()

		engine, _ := initLoginEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", http.NoBody)
		req.Header.Set("Authorization", "Bearer not-a-token")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
