package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/voodley/voodley-backend/internal/config"
	"github.com/voodley/voodley-backend/internal/middleware"
	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/service"
	jwtPkg "github.com/voodley/voodley-backend/pkg/jwt"
	"github.com/voodley/voodley-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		cfg:         cfg,
		log:         log,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(utils.Fields(err)))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.setAuthCookie(c, resp.Token)
	h.log.Info("user registered", zap.String("email", resp.User.Email))

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User registered successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(utils.Fields(err)))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.setAuthCookie(c, resp.Token)

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(models.SuccessResponse(nil, "Logged out successfully"))
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"user": user}, ""))
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(jwtPkg.TokenExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
