package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/api/metrics"
	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

type meResponse struct {
	User domain.Identity `json:"user"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyLoginAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: domain.IdentityOf(user)})
}

// Me returns the authenticated caller's identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: identity})
}
