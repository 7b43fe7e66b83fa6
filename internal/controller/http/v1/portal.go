package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gym-network-toolkit/portal/internal/entity/dto/v1"
	"github.com/gym-network-toolkit/portal/internal/usecase/portal"
	"github.com/gym-network-toolkit/portal/pkg/logger"
)

// SessionCookie carries the portal session id between the login page and
// the portal API. HttpOnly; validity is enforced server-side.
const SessionCookie = "portal_session"

const _cookieMaxAge = 24 * 60 * 60

type portalRoutes struct {
	t portal.Feature
	l logger.Interface
}

// NewPortalRoutes registers the public captive portal surface: the login
// page the router redirects devices to plus the JSON API behind it.
func NewPortalRoutes(handler *gin.Engine, t portal.Feature, l logger.Interface) {
	r := &portalRoutes{t, l}

	handler.GET("/portal", r.bootstrap)

	h := handler.Group("/portal/api/v1")
	{
		h.POST("/auth", r.auth)
		h.GET("/session", r.check)
		h.POST("/logout", r.logout)
	}
}

// bootstrap handles the router redirect. It creates the pre-auth session
// and renders the login page with the gym's branding.
func (r *portalRoutes) bootstrap(c *gin.Context) {
	var req dto.BootstrapRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		r.loginPage(c, http.StatusBadRequest, gin.H{
			"Error": "parámetros requeridos faltantes",
			"Code":  dto.CodeMissingParams,
		})

		return
	}

	session, gym, err := r.t.StartPortal(c.Request.Context(), req.MACAddress, req.IPAddress, req.UserAgent, req.RedirectURL, c.Query("gym"))
	if err != nil {
		r.l.Error(err, "http - v1 - bootstrap")
		r.loginPage(c, http.StatusInternalServerError, gin.H{
			"Error": "error iniciando el portal",
		})

		return
	}

	c.SetCookie(SessionCookie, session.ID, _cookieMaxAge, "/", "", false, true)

	r.loginPage(c, http.StatusOK, gin.H{
		"SessionID":      session.ID,
		"GymName":        gym.Name,
		"LogoURL":        gym.LogoURL,
		"WelcomeMessage": gym.WelcomeMessage,
		"RedirectURL":    session.RedirectURL,
	})
}

func (r *portalRoutes) loginPage(c *gin.Context, status int, data gin.H) {
	c.HTML(status, "login.html", data)
}

func (r *portalRoutes) auth(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		code, msg := credentialBindError(err)
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Error: msg, Code: code})

		return
	}

	if req.SessionID == "" {
		req.SessionID, _ = c.Cookie(SessionCookie)
	}

	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Success: false, Error: "sesión no encontrada", Code: dto.CodeNoSession})

		return
	}

	result := r.t.Authenticate(c.Request.Context(), &req)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)

		return
	}

	c.SetCookie(SessionCookie, req.SessionID, _cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, result)
}

// check reports session validity. Always 200 with a body; the portal page
// polls this and keys off valid/code, not the HTTP status.
func (r *portalRoutes) check(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		sessionID, _ = c.Cookie(SessionCookie)
	}

	if sessionID == "" {
		c.JSON(http.StatusOK, dto.SessionStatusResponse{Valid: false, Error: "sesión no encontrada", Code: dto.CodeNoSession})

		return
	}

	c.JSON(http.StatusOK, r.t.CheckSession(c.Request.Context(), sessionID))
}

func (r *portalRoutes) logout(c *gin.Context) {
	var req dto.LogoutRequest

	_ = c.ShouldBindJSON(&req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID, _ = c.Cookie(SessionCookie)
	}

	if sessionID == "" {
		c.JSON(http.StatusOK, dto.LogoutResponse{Success: false})

		return
	}

	result := r.t.Logout(c.Request.Context(), sessionID)

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, result)
}

// credentialBindError maps a login payload binding failure to the portal
// error codes the UI keys off.
func credentialBindError(err error) (code, msg string) {
	var validatorErr validator.ValidationErrors

	if errors.As(err, &validatorErr) {
		for _, fieldErr := range validatorErr {
			if fieldErr.Tag() == "email" {
				return dto.CodeInvalidEmail, "correo electrónico inválido"
			}
		}

		return dto.CodeMissingCredentials, "correo y contraseña son requeridos"
	}

	return dto.CodeMissingParams, "solicitud inválida"
}
