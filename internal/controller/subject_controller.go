package controller

import (
	"subject-panel-be/internal/dto"
	"subject-panel-be/internal/pkg/serverutils"
	"subject-panel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubjectController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
}

type subjectController struct {
	service service.ISubjectService
}

func NewSubjectController(service service.ISubjectService) ISubjectController {
	return &subjectController{service: service}
}

func (c *subjectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subjects")
	h.Get("", c.GetAll)
	h.Post("", c.Upsert)
}

func (c *subjectController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

// Upsert answers 201 when the submission created a subject and 200 when it
// merged into an existing one.
func (c *subjectController) Upsert(ctx *fiber.Ctx) error {
	var req dto.UpsertSubjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidPayloadError("Request body must be JSON with a name and a list of lessons.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Upsert(ctx.Context(), &req)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if res.IsNew {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(res)
}
