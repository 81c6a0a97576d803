package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/ports"
)

// AuthHandler handles operator authentication requests
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: log}
}

// Login handles operator login
// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body ports.LoginRequest true "Credentials"
// @Success 200 {object} ports.AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("Login failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, resp)
}
