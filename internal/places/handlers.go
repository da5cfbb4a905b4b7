package places

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, defaultRadiusM int) {
	r.Post("/location-name", func(c *fiber.Ctx) error {
		var body struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Latitude == 0 && body.Longitude == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "latitude and longitude required")
		}
		return c.JSON(svc.LocationName(c.Context(), body.Latitude, body.Longitude))
	})

	r.Post("/nearby-places", func(c *fiber.Ctx) error {
		var body struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Radius    int     `json:"radius"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Latitude == 0 && body.Longitude == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "latitude and longitude required")
		}
		if body.Radius == 0 {
			body.Radius = defaultRadiusM
		}
		result, err := svc.Nearby(c.Context(), body.Latitude, body.Longitude, body.Radius)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(fiber.Map{"places": result})
	})

	r.Post("/place-search", func(c *fiber.Ctx) error {
		var body struct {
			Query     string  `json:"query"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Radius    int     `json:"radius"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "query, latitude, and longitude required")
		}
		if body.Latitude == 0 && body.Longitude == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "query, latitude, and longitude required")
		}
		if body.Radius == 0 {
			body.Radius = defaultRadiusM
		}
		result, err := svc.SearchText(c.Context(), body.Query, body.Latitude, body.Longitude, body.Radius)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(fiber.Map{"places": result})
	})

	r.Post("/place-details", func(c *fiber.Ctx) error {
		var body struct {
			PlaceID string `json:"placeId"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.PlaceID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "placeId required")
		}
		details, err := svc.Details(c.Context(), body.PlaceID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(details)
	})
}
