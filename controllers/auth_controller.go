package controllers

import (
	"net/http"

	"handicraft-server/models"
	"handicraft-server/services"
	"handicraft-server/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
	cookies     utils.CookiePolicy
}

func NewAuthController(authService *services.AuthService, cookies utils.CookiePolicy) *AuthController {
	return &AuthController{
		authService: authService,
		cookies:     cookies,
	}
}

// IssueToken godoc
// @Summary Issue access token
// @Description Signs a 30 day token for the signed-in user and stores it in the HTTP-only "token" cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.TokenRequest true "Signed-in user"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /jwt [post]
func (ctrl *AuthController) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := ctrl.authService.IssueToken(req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	ctrl.cookies.SetToken(c, token, ctrl.authService.TokenTTL())
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Logout godoc
// @Summary Logout
// @Description Expires the token cookie on the client. The token is not revoked server-side.
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /logout [get]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.cookies.ClearToken(c)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
