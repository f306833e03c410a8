package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/merchanthub/internal/server/http/dto"
)

// OnboardingHandler processes connected account onboarding requests.
type OnboardingHandler struct {
	facade OnboardingFacade
}

// NewOnboardingHandler creates OnboardingHandler instance.
func NewOnboardingHandler(facade OnboardingFacade) *OnboardingHandler {
	return &OnboardingHandler{facade: facade}
}

// Onboard handles POST /api/account/onboard.
func (h *OnboardingHandler) Onboard(c *gin.Context) {
	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", "")
		return
	}

	redirect, err := h.facade.Onboard(c.Request.Context(), CurrentUserID(c), req.BusinessName, req.SkipOnboarding)
	if err != nil {
		respondFailure(c, err)
		return
	}

	respondOK(c, dto.RedirectResponse{RedirectURL: redirect})
}

// Account handles GET /api/account.
func (h *OnboardingHandler) Account(c *gin.Context) {
	account, err := h.facade.Account(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondFailure(c, err)
		return
	}

	respondOK(c, dto.AccountResponse{
		AccountID:        account.AccountID,
		BusinessName:     account.BusinessName,
		Status:           string(account.Status),
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	})
}
