package controller

import (
	"character-chat-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

// Pinger reports whether the backing store is reachable.
type Pinger func() error

type healthController struct {
	ping Pinger
}

func NewHealthController(ping Pinger) IHealthController {
	return &healthController{ping: ping}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Check)
}

func (c *healthController) Check(ctx *fiber.Ctx) error {
	if c.ping != nil {
		if err := c.ping(); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse("UNAVAILABLE", "store unreachable"))
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"status": "ok"}))
}
