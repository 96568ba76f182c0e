package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/service"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetFacets(ctx *fiber.Ctx) error
	GetSuggestions(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type jobController struct {
	service service.IJobService
}

func NewJobController(service service.IJobService) IJobController {
	return &jobController{service: service}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/jobs")
	h.Get("", c.GetAll)
	h.Get("facets", c.GetFacets)
	h.Get("suggestions", c.GetSuggestions)
	h.Get(":id", c.Show)
}

func (c *jobController) GetAll(ctx *fiber.Ctx) error {
	query := service.ListJobsQuery{
		Locations:      queryValues(ctx, "location"),
		Tech:           queryValues(ctx, "tech"),
		RemotePolicies: queryValues(ctx, "remote_policy"),
		Sort:           ctx.Query("sort"),
		Order:          ctx.Query("order"),
	}

	res, err := c.service.GetAll(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *jobController) GetFacets(ctx *fiber.Ctx) error {
	res, err := c.service.GetFacets(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *jobController) GetSuggestions(ctx *fiber.Ctx) error {
	res, err := c.service.GetSuggestions(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *jobController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NotFound("job not found")
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// queryValues collects every occurrence of a repeatable query param.
func queryValues(ctx *fiber.Ctx, key string) []string {
	raw := ctx.Context().QueryArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			out = append(out, string(v))
		}
	}
	return out
}
