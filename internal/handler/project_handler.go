package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/service"
	"github.com/voodley/voodley-backend/pkg/utils"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	validator      *utils.Validator
	log            *zap.Logger
}

func NewProjectHandler(projectService *service.ProjectService, validator *utils.Validator, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		validator:      validator,
		log:            log,
	}
}

func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	projects, err := h.projectService.ListOwned(viewerID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"projects": projects}, ""))
}

func (h *ProjectHandler) ListPublic(c *fiber.Ctx) error {
	projects, err := h.projectService.ListPublic()
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"projects": projects}, ""))
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid project ID"))
	}

	project, err := h.projectService.Get(id, viewerID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"project": project}, ""))
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req models.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(utils.Fields(err)))
	}

	project, err := h.projectService.Create(viewerID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.log.Info("project created", zap.Uint("project_id", project.ID), zap.Uint("user_id", project.UserID))

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fiber.Map{"project": project}, "Project created successfully"))
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid project ID"))
	}

	var req models.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(utils.Fields(err)))
	}

	project, err := h.projectService.Update(id, viewerID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"project": project}, "Project updated successfully"))
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid project ID"))
	}

	if err := h.projectService.Delete(id, viewerID(c)); err != nil {
		return respondError(c, h.log, err)
	}

	h.log.Info("project deleted", zap.Uint("project_id", id))

	return c.JSON(models.SuccessResponse(nil, "Project deleted successfully"))
}
