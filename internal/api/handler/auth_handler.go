package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthhub/gym-admin/internal/api/metrics"
	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/ports"
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

// loginResponse is the flat shape the dashboard login page consumes.
type loginResponse struct {
	UserID string      `json:"userId"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Phone  string      `json:"phone"`
	Role   domain.Role `json:"role"`
	Token  string      `json:"token"`
}

type registerAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7"`
	Password string `json:"password" validate:"required,min=8"`
}

// mePayload is the identity-resolution envelope. The dashboard treats
// any other shape as an invalid session.
type mePayload struct {
	Success bool    `json:"success"`
	User    *meUser `json:"user"`
}

type meUser struct {
	ID    string      `json:"_id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Role  domain.Role `json:"role"`
}

// Login authenticates an operator and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   user.Role,
		Token:  token,
	})
}

// Me resolves the bearer token to the account it was issued for.
//
// @Summary      Resolve identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  mePayload
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	user, err := h.authService.ResolveIdentity(c.Request().Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenRevoked):
			metrics.IdentityResolutionsTotal.WithLabelValues("revoked").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			metrics.IdentityResolutionsTotal.WithLabelValues("expired").Inc()
		default:
			metrics.IdentityResolutionsTotal.WithLabelValues("error").Inc()
			return err
		}
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session"})
	}

	metrics.IdentityResolutionsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, mePayload{
		Success: true,
		User: &meUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Role:  user.Role,
		},
	})
}

// RegisterAdmin creates a gym-admin account.
//
// @Summary      Register a gym admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerAdminRequest  true  "Admin details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register/admin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.RegisterAdmin(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "user": user})
}

// Logout revokes the caller's bearer token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
