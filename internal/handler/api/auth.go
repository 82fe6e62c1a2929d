package api

import (
	"net/http"
	"time"

	reqdto "shopcompare/internal/handler/dto/request"
	resdto "shopcompare/internal/handler/dto/response"
	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/handler/middleware"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/cookie"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	tokenTTL    time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieCfg config.CookieConfig, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cookieCfg,
		tokenTTL:    tokenTTL,
	}
}

// @Summary Register
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, h.tokenTTL)
	c.JSON(http.StatusCreated, toAuthResponse(result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.Handle(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, h.tokenTTL)
	c.JSON(http.StatusOK, toAuthResponse(result))
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie is all the server can do.
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	u, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// @Summary Update preferences
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PreferencesRequest true "Preferences"
// @Success 200 {object} resdto.UpdatePreferencesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/preferences [put]
func (h *AuthHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req reqdto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	u, err := h.authUseCase.UpdatePreferences(c.Request.Context(), userID, req.ToPatch())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UpdatePreferencesResponse{
		Message:     "Preferences updated successfully.",
		Preferences: resdto.PreferencesResponse{Theme: u.Preferences().Theme.String()},
	})
}

func toAuthResponse(r *usecase.AuthResult) resdto.AuthResponse {
	return resdto.AuthResponse{
		Token:  r.Token,
		UserID: r.User.ID(),
		Email:  r.User.Email().Value(),
	}
}

// requireUser aborts with 401 when the auth middleware did not run.
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Unauthorized(c, "User not authenticated")
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Validation(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
