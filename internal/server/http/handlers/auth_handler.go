package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/merchanthub/internal/server/http/dto"
	"github.com/sellerdesk/merchanthub/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and session introspection.
type AuthHandler struct {
	facade   AuthFacade
	demoMode bool
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, demoMode bool) *AuthHandler {
	return &AuthHandler{facade: facade, demoMode: demoMode}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	usr, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondFailure(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	respondOK(c, dto.UserResponse{Email: usr.Email, AccountID: usr.AccountID})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	usr, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondFailure(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	respondOK(c, dto.UserResponse{Email: usr.Email, AccountID: usr.AccountID})
}

// Session handles GET /api/user/session.
func (h *AuthHandler) Session(c *gin.Context) {
	usr, err := h.facade.CurrentUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondFailure(c, err)
		return
	}
	respondOK(c, dto.SessionResponse{Email: usr.Email, AccountID: usr.AccountID, DemoMode: h.demoMode})
}

// DemoEmail handles GET /api/user/demo-email. The registration page uses
// the returned address to pre-fill its disabled email field in demo mode.
func (h *AuthHandler) DemoEmail(c *gin.Context) {
	email, err := h.facade.DemoEmail()
	if err != nil {
		respondFailure(c, err)
		return
	}
	respondOK(c, dto.DemoEmailResponse{Email: email})
}
