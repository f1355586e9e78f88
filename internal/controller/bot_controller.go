package controller

import (
	"restobot-be/internal/dto"
	"restobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type botController struct {
	service service.IChatService
}

func NewBotController(service service.IChatService) IBotController {
	return &botController{service: service}
}

func (c *botController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

func (c *botController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.HandleMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}
