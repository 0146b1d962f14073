package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/voodley/voodley-backend/internal/config"
	"github.com/voodley/voodley-backend/internal/handler"
	"github.com/voodley/voodley-backend/internal/middleware"
	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/repository"
	"github.com/voodley/voodley-backend/internal/service"
	jwtPkg "github.com/voodley/voodley-backend/pkg/jwt"
	"github.com/voodley/voodley-backend/pkg/utils"
)

// New wires repositories, services and handlers onto a fiber app.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) *fiber.App {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	tokens := jwtPkg.NewManager(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)

	validator := utils.NewValidator()

	authHandler := handler.NewAuthHandler(authService, validator, cfg, log)
	userHandler := handler.NewUserHandler(userService, validator, log)
	projectHandler := handler.NewProjectHandler(projectService, validator, log)

	auth := middleware.NewAuthMiddleware(userRepo, tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/health", healthCheck)
	app.Get("/", root)

	api := app.Group("/api/v1")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", auth.Required(), authHandler.Me)

	users := api.Group("/users")
	users.Get("/", auth.Required(), auth.AdminOnly(), userHandler.ListUsers)
	users.Patch("/me", auth.Required(), userHandler.UpdateProfile)
	users.Post("/me/password", auth.Required(), userHandler.ChangePassword)
	users.Get("/:id", auth.Required(), userHandler.GetUser)

	projects := api.Group("/projects")
	projects.Get("/", auth.Required(), projectHandler.ListMine)
	projects.Get("/public", auth.Optional(), projectHandler.ListPublic)
	projects.Post("/", auth.Required(), projectHandler.Create)
	projects.Get("/:id", auth.Optional(), projectHandler.Get)
	projects.Patch("/:id", auth.Required(), projectHandler.Update)
	projects.Delete("/:id", auth.Required(), projectHandler.Delete)

	return app
}

// errorHandler is the last line of defense: anything unhandled becomes a
// generic 500 instead of crashing the process.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(models.ErrorResponse(e.Message))
		}

		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "voodley-backend",
		"version":   "1.0.0",
	})
}

func root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Voodley API v1",
		"docs":    "/api/v1",
		"health":  "/health",
	})
}
