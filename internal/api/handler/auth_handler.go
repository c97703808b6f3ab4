package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/exportbase/marketplace-api/internal/api/metrics"
	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
	"github.com/exportbase/marketplace-api/internal/core/service"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    *service.SessionService
}

func NewAuthHandler(authService ports.AuthService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Signin authenticates a user and returns a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginDuration.WithLabelValues("login").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("none", "invalid").Inc()
		if err == domain.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(result.User.Role), "success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.User})
}

// Signup registers a new account and opens a session for it.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	start := time.Now()
	result, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.Name, domain.Role(req.Role))
	metrics.LoginDuration.WithLabelValues("signup").Observe(time.Since(start).Seconds())
	if err != nil {
		switch err {
		case domain.ErrUserExists:
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case domain.ErrInvalidCredentials:
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, User: result.User})
}

// Signout destroys the caller's session. Always succeeds: signing out
// without a session, or with a stale token, is a no-op.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204  "session cleared"
// @Router       /v1/auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	_ = h.authService.Logout(c.Request().Context(), tokenFromHeader(c))
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session. Unauthenticated callers get a null
// user rather than an error; reading the session never fails.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	user := h.sessions.Current(c.Request().Context(), tokenFromHeader(c))
	return c.JSON(http.StatusOK, sessionResponse{
		User:            user,
		IsAuthenticated: user != nil,
	})
}
