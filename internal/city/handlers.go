package city

import (
	"github.com/Madhu-Juttiga/TourMate-2/internal/discovery"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req City
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		created, err := svc.CreateCity(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		cities, err := svc.Cities(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(cities)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		found, err := svc.GetCity(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "city not found")
		}
		return c.JSON(found)
	})

	r.Post("/:id/places", func(c *fiber.Ctx) error {
		var req places.Place
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		created, err := svc.AddPlace(c.Context(), c.Params("id"), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/:id/places", func(c *fiber.Ctx) error {
		result, err := svc.Discover(
			c.Context(),
			c.Params("id"),
			c.Query("q"),
			discovery.ParseFilter(c.Query("filter")),
			discovery.ParseSortKey(c.Query("sort")),
		)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "city not found")
		}
		return c.JSON(fiber.Map{"places": result})
	})
}
