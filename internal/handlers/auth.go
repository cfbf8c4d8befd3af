package handlers

import (
	"net/http"

	"hospital-management-server/internal/config"
	"hospital-management-server/internal/middleware"
	"hospital-management-server/internal/services"
	"hospital-management-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Auth *services.AuthService
	Cfg  *config.Config
	Log  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Cfg: cfg, Log: log}
}

// Signup handles user registration and starts a session.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupInput
	if !utils.BindJSON(c, &req) {
		return
	}

	session, err := h.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	utils.Created(c, "User created successfully", session)
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if !utils.BindJSON(c, &req) {
		return
	}

	session, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	utils.Success(c, "Login successful", session)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.Cfg.IsProduction(), true)
	utils.Success(c, "Logged out successfully", nil)
}

// Check reports the authenticated caller.
func (h *AuthHandler) Check(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	user, err := h.Auth.Me(c.Request.Context(), identity)
	if err != nil {
		utils.RespondError(c, h.Log, err)
		return
	}
	utils.Success(c, "Authenticated", gin.H{"authenticated": true, "user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.TokenCookie,
		token,
		int(h.Cfg.TokenTTL().Seconds()),
		"/",
		"",
		h.Cfg.IsProduction(),
		true,
	)
}
