package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/voodley/voodley-backend/internal/middleware"
	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/service"
)

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(middleware.ContextUserKey).(*models.User)
	return user
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// viewerID is 0 for unauthenticated requests.
func viewerID(c *fiber.Ctx) uint {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return 0
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountDisabled):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProjectNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps known service errors to client responses. Anything
// unexpected is logged and hidden behind a generic 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(status).JSON(models.ErrorResponse("Internal server error"))
	}
	return c.Status(status).JSON(models.ErrorResponse(err.Error()))
}
