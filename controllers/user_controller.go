package controllers

import (
	"errors"
	"net/http"

	"handicraft-server/middleware"
	"handicraft-server/models"
	"handicraft-server/repositories"
	"handicraft-server/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetAllUsers godoc
// @Summary List users
// @Tags Users
// @Security CookieAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByEmail godoc
// @Summary Get user by email
// @Tags Users
// @Security CookieAuth
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{email} [get]
func (ctrl *UserController) GetUserByEmail(c *gin.Context) {
	user, err := ctrl.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(c, http.StatusNotFound, "User not found", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create user
// @Description Stores the sign-in record. Email uniqueness is not enforced.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := ctrl.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateLastLogin godoc
// @Summary Record last login
// @Description Sets lastLoginAt on the user with the given email. No match is not an error.
// @Tags Users
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateLastLoginRequest true "Login"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /users [patch]
func (ctrl *UserController) UpdateLastLogin(c *gin.Context) {
	var req models.UpdateLastLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !middleware.IsOwner(c, req.Email) {
		middleware.AbortForbidden(c)
		return
	}

	result, err := ctrl.userService.UpdateLastLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateProfile godoc
// @Summary Update profile
// @Tags Users
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{email} [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := ctrl.userService.UpdateProfile(c.Request.Context(), c.Param("email"), req)
	if errors.Is(err, repositories.ErrNotFound) {
		respondError(c, http.StatusNotFound, "User not found", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
