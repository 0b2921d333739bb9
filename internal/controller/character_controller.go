package controller

import (
	"character-chat-be/internal/dto"
	"character-chat-be/internal/pkg/serverutils"
	"character-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICharacterController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler, optionalAuth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type characterController struct {
	service service.ICharacterService
}

func NewCharacterController(service service.ICharacterService) ICharacterController {
	return &characterController{service: service}
}

func (c *characterController) RegisterRoutes(r fiber.Router, auth fiber.Handler, optionalAuth fiber.Handler) {
	h := r.Group("/characters/v1")
	h.Get("", optionalAuth, c.GetAll)
	h.Post("", auth, c.Create)
	h.Patch(":id", auth, c.Update)
}

func (c *characterController) GetAll(ctx *fiber.Ctx) error {
	includePrivate := ctx.QueryBool("include_private", false)

	res, err := c.service.List(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), includePrivate)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all characters", res))
}

func (c *characterController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCharacterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create character", res))
}

func (c *characterController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCharacterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), serverutils.IdentityFromCtx(ctx), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update character", res))
}
