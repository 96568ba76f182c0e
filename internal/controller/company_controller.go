package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/service"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type companyController struct {
	service service.ICompanyService
}

func NewCompanyController(service service.ICompanyService) ICompanyController {
	return &companyController{service: service}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/companies")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
}

func (c *companyController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *companyController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NotFound("company not found")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
