package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/service"
	"github.com/voodley/voodley-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
	log         *zap.Logger
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator, log *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
		log:         log,
	}
}

// ListUsers is admin only, enforced by the router.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"users": users}, ""))
}

// GetUser returns a user profile, visible to the user themselves or an admin.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	actor := currentUser(c)
	if !actor.IsAdmin() && actor.ID != id {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"user": user}, ""))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(utils.Fields(err)))
	}

	user, err := h.userService.UpdateProfile(viewerID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"user": user}, "Profile updated successfully"))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(utils.Fields(err)))
	}

	if err := h.userService.ChangePassword(viewerID(c), req); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Password updated successfully"))
}
