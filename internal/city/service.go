package city

import (
	"context"

	"github.com/Madhu-Juttiga/TourMate-2/internal/db"
	"github.com/Madhu-Juttiga/TourMate-2/internal/discovery"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
	"github.com/Madhu-Juttiga/TourMate-2/internal/shared/geo"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateCity(ctx context.Context, input City) (City, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO cities (id, name, state, lat, lng)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at
	`, input.ID, input.Name, input.State, input.Lat, input.Lng)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return City{}, err
	}
	return input, nil
}

func (s *Service) Cities(ctx context.Context) ([]City, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, state, lat, lng, created_at
		FROM cities
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.Lat, &c.Lng, &c.CreatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, nil
}

func (s *Service) GetCity(ctx context.Context, id string) (City, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, state, lat, lng, created_at
		FROM cities WHERE id=$1
	`, id)
	var c City
	if err := row.Scan(&c.ID, &c.Name, &c.State, &c.Lat, &c.Lng, &c.CreatedAt); err != nil {
		return City{}, err
	}
	return c, nil
}

// AddPlace stores a seed place for a city. The stored record carries no
// distance; distances are derived from the city's reference coordinate on
// every read so a list never mixes origins.
func (s *Service) AddPlace(ctx context.Context, cityID string, input places.Place) (places.Place, error) {
	c, err := s.GetCity(ctx, cityID)
	if err != nil {
		return places.Place{}, err
	}

	input.ID = uuid.NewString()
	if input.Category == "" {
		input.Category = places.CategoryTouristSpot
	}
	if input.Image == "" {
		input.Image = "/placeholder.svg"
	}
	if input.Thumbnail == "" {
		input.Thumbnail = input.Image
	}
	if input.EntryFee == "" {
		input.EntryFee = "Contact for details"
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO city_places (id, city_id, name, category, description, lat, lng, image, thumbnail, rating, timings, entry_fee)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, input.ID, cityID, input.Name, string(input.Category), input.Description,
		input.Location.Lat, input.Location.Lng, input.Image, input.Thumbnail,
		input.Rating, input.Timings, input.EntryFee)
	if err != nil {
		return places.Place{}, err
	}

	input.Distance = geo.RoundKm1(geo.HaversineKm(c.Lat, c.Lng, input.Location.Lat, input.Location.Lng))
	return input, nil
}

// CityPlaces loads the full seed set for a city with distances computed
// from the city's reference coordinate.
func (s *Service) CityPlaces(ctx context.Context, cityID string) ([]places.Place, error) {
	c, err := s.GetCity(ctx, cityID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, name, category, description, lat, lng, image, thumbnail,
		       COALESCE(rating,0), COALESCE(timings,''), COALESCE(entry_fee,'')
		FROM city_places WHERE city_id=$1
		ORDER BY name
	`, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]places.Place, 0)
	for rows.Next() {
		var p places.Place
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &category, &p.Description,
			&p.Location.Lat, &p.Location.Lng, &p.Image, &p.Thumbnail,
			&p.Rating, &p.Timings, &p.EntryFee); err != nil {
			return nil, err
		}
		p.Category = places.Category(category)
		p.Distance = geo.RoundKm1(geo.HaversineKm(c.Lat, c.Lng, p.Location.Lat, p.Location.Lng))
		result = append(result, p)
	}
	return result, nil
}

// Discover derives the display list for a city: full seed set through the
// text filter, category filter, and sort pipeline.
func (s *Service) Discover(ctx context.Context, cityID, query string, filter discovery.Filter, sortBy discovery.SortKey) ([]places.Place, error) {
	fullSet, err := s.CityPlaces(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return discovery.Derive(fullSet, query, filter, sortBy), nil
}
