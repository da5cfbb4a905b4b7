package server

import (
	"context"
	"errors"
	"time"

	"github.com/Madhu-Juttiga/TourMate-2/internal/city"
	"github.com/Madhu-Juttiga/TourMate-2/internal/config"
	"github.com/Madhu-Juttiga/TourMate-2/internal/festival"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
	"github.com/Madhu-Juttiga/TourMate-2/internal/provider"
	"github.com/Madhu-Juttiga/TourMate-2/internal/search"
	"github.com/Madhu-Juttiga/TourMate-2/internal/transit"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

// errorHandler keeps every failure on the wire as {"error": "..."} so
// clients never have to parse two shapes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	client := provider.NewClient(s.Cfg.GoogleBaseURL, s.Cfg.GoogleAPIKey)
	cache := provider.NewCache(s.Redis, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	placeSvc := places.NewService(client, cache)

	api := s.App.Group("/api")
	places.RegisterRoutes(api, placeSvc, s.Cfg.SearchRadiusM)
	transit.RegisterRoutes(api, transit.NewService(client))

	radiusM := s.Cfg.SearchRadiusM
	remote := func(ctx context.Context, query string, lat, lng float64) ([]places.Place, error) {
		return placeSvc.SearchText(ctx, query, lat, lng, radiusM)
	}
	search.RegisterRoutes(api.Group("/search"), remote, time.Duration(s.Cfg.SearchDebounceMS)*time.Millisecond)

	city.RegisterRoutes(api.Group("/cities"), city.NewService(s.DB))
	festival.RegisterRoutes(api.Group("/places"), festival.NewService(s.DB))
}
