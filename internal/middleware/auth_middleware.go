package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/repository"
	jwtPkg "github.com/voodley/voodley-backend/pkg/jwt"
)

// Context keys for the resolved identity.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
)

// TokenCookieName is the session cookie set on register/login.
const TokenCookieName = "token"

var errNoIdentity = errors.New("no identity")

// AuthMiddleware resolves the acting user from a bearer token, read from
// the session cookie or the Authorization header.
type AuthMiddleware struct {
	userRepo *repository.UserRepository
	tokens   *jwtPkg.Manager
}

func NewAuthMiddleware(userRepo *repository.UserRepository, tokens *jwtPkg.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Required rejects the request unless a valid token resolves to an active user.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := m.resolve(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
		}

		c.Locals(ContextUserKey, user)
		c.Locals(ContextUserIDKey, user.ID)
		return c.Next()
	}
}

// Optional resolves the identity when a valid token is present and
// continues unauthenticated otherwise.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := m.resolve(c); err == nil {
			c.Locals(ContextUserKey, user)
			c.Locals(ContextUserIDKey, user.ID)
		}
		return c.Next()
	}
}

// AdminOnly must run after Required.
func (m *AuthMiddleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(ContextUserKey).(*models.User)
		if !ok || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Admin access required"))
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*models.User, error) {
	token := extractToken(c)
	if token == "" {
		return nil, errNoIdentity
	}

	userID, err := m.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.GetByID(userID)
	if err != nil {
		return nil, errNoIdentity
	}
	if !user.IsActive {
		return nil, errNoIdentity
	}

	return user, nil
}

func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(TokenCookieName); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
