package transit

import (
	"context"

	"github.com/Madhu-Juttiga/TourMate-2/internal/provider"
)

// Directions is the slice of the upstream client the service uses.
type Directions interface {
	TransitDirections(ctx context.Context, originLat, originLng, destLat, destLng float64) (provider.DirectionsResponse, error)
}

type Service struct {
	directions Directions
}

func NewService(directions Directions) *Service {
	return &Service{directions: directions}
}

// Routes returns the bus options from the origin to the destination. The
// result set belongs to this destination only; callers replace, never merge.
func (s *Service) Routes(ctx context.Context, originLat, originLng, destLat, destLng float64) ([]Bus, error) {
	resp, err := s.directions.TransitDirections(ctx, originLat, originLng, destLat, destLng)
	if err != nil {
		return nil, err
	}
	return BusesFromDirections(resp), nil
}
