package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard-be/internal/dto"
	"jobboard-be/internal/pkg/apperror"
	"jobboard-be/internal/pkg/serverutils"
	"jobboard-be/internal/pkg/session"
	"jobboard-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	PostMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/jobs/:id/chat")
	h.Get("", c.GetHistory)
	h.Post("", c.PostMessage)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	// Non-UUID ids cannot exist under this schema, so they 404 here like
	// the POST path. Well-formed unknown ids still get an empty thread
	// from the service.
	jobId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NotFound("job not found")
	}

	sess := session.FromRequest(ctx)

	res, err := c.service.GetHistory(ctx.Context(), jobId, sess.Id)
	if err != nil {
		return err
	}

	if sess.Issued {
		session.SetCookie(ctx, sess.Id)
	}
	return ctx.JSON(res)
}

func (c *chatController) PostMessage(ctx *fiber.Ctx) error {
	jobId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NotFound("job not found")
	}

	var req dto.SendMessageRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	sess := session.FromRequest(ctx)

	res, err := c.service.PostMessage(ctx.Context(), jobId, sess.Id, req.Message)
	if err != nil {
		return err
	}

	if sess.Issued {
		session.SetCookie(ctx, sess.Id)
	}
	return ctx.JSON(res)
}
