package places

import (
	"context"
	"fmt"
	"log"

	"github.com/Madhu-Juttiga/TourMate-2/internal/provider"
)

// Provider is the slice of the upstream client the service uses.
type Provider interface {
	NearbySearch(ctx context.Context, lat, lng float64, radiusM int) ([]provider.PlaceResult, error)
	TextSearch(ctx context.Context, query string, lat, lng float64, radiusM int) ([]provider.PlaceResult, error)
	Details(ctx context.Context, placeID string) (provider.DetailsResult, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) ([]provider.GeocodeResult, error)
	PhotoURL(ref string, maxWidth int) string
}

const (
	maxDetailPhotos  = 5
	maxDetailReviews = 3
)

type Service struct {
	provider Provider
	cache    *provider.Cache
}

func NewService(p Provider, cache *provider.Cache) *Service {
	return &Service{provider: p, cache: cache}
}

// Nearby fetches and normalizes points of interest around the origin. Every
// distance in the result is relative to that one origin.
func (s *Service) Nearby(ctx context.Context, lat, lng float64, radiusM int) ([]Place, error) {
	results, err := s.provider.NearbySearch(ctx, lat, lng, radiusM)
	if err != nil {
		return nil, err
	}
	return s.normalizeBatch(results, lat, lng), nil
}

// SearchText runs a free-text search scoped near the origin.
func (s *Service) SearchText(ctx context.Context, query string, lat, lng float64, radiusM int) ([]Place, error) {
	results, err := s.provider.TextSearch(ctx, query, lat, lng, radiusM)
	if err != nil {
		return nil, err
	}
	return s.normalizeBatch(results, lat, lng), nil
}

func (s *Service) normalizeBatch(results []provider.PlaceResult, originLat, originLng float64) []Place {
	out := make([]Place, 0, len(results))
	for _, raw := range results {
		place, ok := FromProviderResult(raw, originLat, originLng, s.provider.PhotoURL)
		if !ok {
			log.Printf("skipping malformed place record %q", raw.PlaceID)
			continue
		}
		out = append(out, place)
	}
	return out
}

// Details fetches the on-demand detail view for one place.
func (s *Service) Details(ctx context.Context, placeID string) (Details, error) {
	cacheKey := "place-details:" + placeID

	var cached Details
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	raw, err := s.provider.Details(ctx, placeID)
	if err != nil {
		return Details{}, err
	}

	photos := make([]string, 0, maxDetailPhotos)
	for _, p := range raw.Photos {
		if len(photos) == maxDetailPhotos {
			break
		}
		if p.PhotoReference != "" {
			photos = append(photos, s.provider.PhotoURL(p.PhotoReference, imageWidth))
		}
	}

	reviews := make([]DetailsReview, 0, maxDetailReviews)
	for _, r := range raw.Reviews {
		if len(reviews) == maxDetailReviews {
			break
		}
		reviews = append(reviews, DetailsReview{
			Author: r.AuthorName,
			Rating: r.Rating,
			Text:   r.Text,
			Time:   r.RelativeTimeDescription,
		})
	}

	phone := raw.FormattedPhoneNumber
	if phone == "" {
		phone = "Not available"
	}

	details := Details{
		Name:    raw.Name,
		Address: raw.FormattedAddress,
		Phone:   phone,
		Website: raw.Website,
		Rating:  raw.Rating,
		Reviews: reviews,
		Photos:  photos,
		Timings: timingsFromHours(raw.OpeningHours),
	}
	if raw.Geometry != nil {
		details.Location = Location{Lat: raw.Geometry.Location.Lat, Lng: raw.Geometry.Location.Lng}
	}

	s.cache.Set(ctx, cacheKey, details)
	return details, nil
}

// LocationName reverse-geocodes a coordinate into a short display name. A
// provider failure degrades to the bare coordinate string rather than an
// error; callers always get something to show.
func (s *Service) LocationName(ctx context.Context, lat, lng float64) LocationName {
	cacheKey := fmt.Sprintf("location-name:%.4f:%.4f", lat, lng)

	var cached LocationName
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached
	}

	results, err := s.provider.ReverseGeocode(ctx, lat, lng)
	if err != nil || len(results) == 0 {
		if err != nil {
			log.Printf("reverse geocode failed: %v", err)
		}
		return LocationName{LocationName: fmt.Sprintf("%.2f, %.2f", lat, lng)}
	}

	name := displayName(results[0])
	out := LocationName{LocationName: name, FullAddress: results[0].FormattedAddress}
	s.cache.Set(ctx, cacheKey, out)
	return out
}

func displayName(result provider.GeocodeResult) string {
	var city, state, country string
	for _, component := range result.AddressComponents {
		switch {
		case hasComponentType(component, "locality"):
			city = component.LongName
		case hasComponentType(component, "administrative_area_level_2") && city == "":
			city = component.LongName
		case hasComponentType(component, "administrative_area_level_1"):
			state = component.ShortName
		case hasComponentType(component, "country"):
			country = component.ShortName
		}
	}

	if city != "" {
		region := state
		if region == "" {
			region = country
		}
		if region != "" {
			return city + ", " + region
		}
		return city
	}
	if result.FormattedAddress != "" {
		return result.FormattedAddress
	}
	return "Unknown location"
}

func hasComponentType(component provider.AddressComponent, t string) bool {
	for _, ct := range component.Types {
		if ct == t {
			return true
		}
	}
	return false
}
