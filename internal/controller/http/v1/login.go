package v1

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/gym-network-toolkit/portal/config"
)

// LoginRoute issues and validates the admin tokens protecting the
// management API. With an OIDC issuer configured the middleware defers to
// it; otherwise local HS256 tokens are minted against the configured
// admin credential.
type LoginRoute struct {
	cfg      *config.Config
	verifier *oidc.IDTokenVerifier
}

// NewLoginRoute -.
func NewLoginRoute(cfg *config.Config) *LoginRoute {
	lr := &LoginRoute{cfg: cfg}

	if cfg.Auth.ClientID != "" && cfg.Auth.Issuer != "" {
		provider, err := oidc.NewProvider(context.Background(), cfg.Auth.Issuer)
		if err == nil {
			lr.verifier = provider.Verifier(&oidc.Config{ClientID: cfg.Auth.ClientID})
		}
	}

	return lr
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login -.
func (lr *LoginRoute) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response{Error: "username and password are required"})

		return
	}

	if !lr.credentialsValid(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, response{Error: "invalid credentials"})

		return
	}

	claims := jwt.MapClaims{
		"sub": req.Username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(lr.cfg.Auth.JWTExpiration).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(lr.cfg.Auth.JWTKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response{Error: "could not issue token"})

		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (lr *LoginRoute) credentialsValid(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(lr.cfg.Auth.AdminUsername)) != 1 {
		return false
	}

	stored := lr.cfg.Auth.AdminPassword
	if stored == "" {
		return false
	}

	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// JWTAuthMiddleware validates bearer tokens on the protected API group.
func (lr *LoginRoute) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		tokenString = strings.Replace(tokenString, "Bearer ", "", 1)

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "unauthorized"})

			return
		}

		if lr.cfg.Auth.ClientID != "" && lr.verifier != nil {
			if _, err := lr.verifier.Verify(c.Request.Context(), tokenString); err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "unauthorized"})

				return
			}

			c.Next()

			return
		}

		claims := &jwt.MapClaims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
			return []byte(lr.cfg.Auth.JWTKey), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: "unauthorized"})

			return
		}

		c.Next()
	}
}
