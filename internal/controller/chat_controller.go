package controller

import (
	"character-chat-be/internal/dto"
	"character-chat-be/internal/pkg/serverutils"
	"character-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	CreateMessage(ctx *fiber.Ctx) error
	GetAllMessages(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/chat/v1")
	h.Use(auth)
	h.Get("sessions", c.GetAllSessions)
	h.Post("sessions", c.CreateSession)
	h.Patch("sessions/:id", c.UpdateSession)
	h.Get("sessions/:id/messages", c.GetAllMessages)
	h.Post("sessions/:id/messages", c.CreateMessage)
}

func (c *chatController) GetAllSessions(ctx *fiber.Ctx) error {
	includeArchived := ctx.QueryBool("include_archived", false)

	res, err := c.service.ListSessions(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), includeArchived)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", res))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateChatSessionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) UpdateSession(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateChatSessionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateSession(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *chatController) GetAllMessages(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.ListMessages(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all messages", res))
}

func (c *chatController) CreateMessage(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreateChatMessageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateMessage(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create message", res))
}
