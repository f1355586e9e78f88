package controller

import (
	"restobot-be/internal/dto"
	"restobot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRestaurantController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Menu(ctx *fiber.Ctx) error
}

type restaurantController struct {
	service service.IRestaurantService
}

func NewRestaurantController(service service.IRestaurantService) IRestaurantController {
	return &restaurantController{service: service}
}

func (c *restaurantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/restaurants")
	h.Get("/", c.List)
	h.Get("/search", c.Search)
	h.Get("/:name/menu", c.Menu)
}

func (c *restaurantController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListAll(ctx.Context())
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

func (c *restaurantController) Search(ctx *fiber.Ctx) error {
	var q dto.SearchRestaurantQuery
	if err := ctx.QueryParser(&q); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.Search(ctx.Context(), &q)
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

func (c *restaurantController) Menu(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	res, err := c.service.Menu(ctx.Context(), name)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "restaurant not found",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}
