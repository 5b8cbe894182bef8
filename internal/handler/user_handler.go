package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"github.com/prperemyshlev/vidverse/internal/service"
)

// UserHandler handles account and channel requests
type UserHandler struct {
	userService service.UserService
	cookies     CookieConfig
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, cookies CookieConfig) *UserHandler {
	return &UserHandler{
		userService: userService,
		cookies:     cookies,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, user, "User registered successfully. Please verify your email")
}

// Verify handles email verification
// @Summary Verify a pending registration
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Verification request"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/verify [post]
func (h *UserHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	already, err := h.userService.Verify(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	message := "Account verified successfully"
	if already {
		message = "Account is already verified"
	}
	respond(c, http.StatusOK, nil, message)
}

// Login handles user login
// @Summary Login user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	user, tokens, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.cookies.setTokens(c, tokens)
	respond(c, http.StatusOK, dto.LoginResponse{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "User logged in successfully")
}

// RefreshToken rotates the token pair
// @Summary Refresh tokens
// @Tags users
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(refreshTokenCookie)
	if token == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	tokens, err := h.userService.RefreshToken(c.Request.Context(), token)
	if err != nil {
		fail(c, err)
		return
	}

	h.cookies.setTokens(c, tokens)
	respond(c, http.StatusOK, dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "Access token refreshed")
}

// Logout handles user logout
// @Summary Logout user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context(), currentUserID(c), c.GetString(accessTokenContextKey)); err != nil {
		fail(c, err)
		return
	}

	h.cookies.clearTokens(c)
	respond(c, http.StatusOK, nil, "User logged out")
}

// ChangePassword replaces the caller's password
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), currentUserID(c), &req); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the authenticated user
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/current-user [get]
func (h *UserHandler) CurrentUser(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		fail(c, apierror.NotFound("User not found"))
		return
	}
	respond(c, http.StatusOK, user, "User fetched successfully")
}

// UpdateAccount changes full name and email
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindError(err))
		return
	}

	user, err := h.userService.UpdateAccount(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Account details updated successfully")
}

// UpdateAvatar replaces the avatar image
// @Summary Update avatar
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	file, closeFile, err := formFile(c, "avatar")
	if err != nil {
		fail(c, err)
		return
	}
	defer closeFile()

	user, err := h.userService.UpdateAvatar(c.Request.Context(), currentUser(c), file)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Avatar image updated successfully")
}

// UpdateCoverImage replaces the cover image
// @Summary Update cover image
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	file, closeFile, err := formFile(c, "coverImage")
	if err != nil {
		fail(c, err)
		return
	}
	defer closeFile()

	user, err := h.userService.UpdateCoverImage(c.Request.Context(), currentUser(c), file)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Cover image updated successfully")
}

// Channel returns a user's public channel profile
// @Summary Get channel profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/c/{username} [get]
func (h *UserHandler) Channel(c *gin.Context) {
	channel, err := h.userService.Channel(c.Request.Context(), c.Param("username"), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, channel, "User channel fetched successfully")
}

// WatchHistory returns the caller's watched videos
// @Summary Get watch history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/history [get]
func (h *UserHandler) WatchHistory(c *gin.Context) {
	videos, err := h.userService.WatchHistory(c.Request.Context(), currentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, videos, "Watch history fetched successfully")
}
