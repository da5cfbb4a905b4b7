package transit

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/transit-routes", func(c *fiber.Ctx) error {
		var body struct {
			OriginLat float64 `json:"originLat"`
			OriginLng float64 `json:"originLng"`
			DestLat   float64 `json:"destLat"`
			DestLng   float64 `json:"destLng"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		buses, err := svc.Routes(c.Context(), body.OriginLat, body.OriginLng, body.DestLat, body.DestLng)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(fiber.Map{"buses": buses})
	})
}
