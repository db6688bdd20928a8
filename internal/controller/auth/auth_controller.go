package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates an admin, faculty or student account. The id must be unused.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup_data body dto.SignupRequest true "Account details"
// @Success 200 {object} dto.SignupResponse "Registration successful"
// @Failure 400 {object} dto.SignupResponse "Invalid body or user already exists"
// @Failure 500 {object} dto.SignupResponse "Internal server error"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Signup: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.SignupResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := c.authService.Signup(req); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			ctx.JSON(http.StatusBadRequest, dto.SignupResponse{Success: false, Message: "User already exists"})
			return
		}
		log.Error().Err(err).Str("userID", req.ID).Msg("Signup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.SignupResponse{Success: false, Message: "Error in signup"})
		return
	}

	ctx.JSON(http.StatusOK, dto.SignupResponse{Success: true, Message: "Registration successful"})
}

// Login godoc
// @Summary Authenticate and receive a session token
// @Description Verifies credentials and returns the sanitized user plus a signed token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login_data body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Wrong password"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	user, token, err := c.authService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		case errors.Is(err, service.ErrWrongPassword):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Wrong password"})
		default:
			log.Error().Err(err).Str("userID", req.ID).Msg("Login: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error in login"})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "User authenticated successfully",
		User:    *user,
		Token:   token,
	})
}

// Profile godoc
// @Summary Fetch a user profile
// @Tags Auth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /profile/{userId} [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID := ctx.Param("userId")

	profile, err := c.authService.Profile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Str("userID", userID).Msg("Profile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error fetching user profile"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless, so this only acknowledges the client;
// @Description the token stays valid until its expiry.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}
