package places

import (
	"strings"

	"github.com/Madhu-Juttiga/TourMate-2/internal/provider"
	"github.com/Madhu-Juttiga/TourMate-2/internal/shared/geo"
)

const (
	placeholderImage = "/placeholder.svg"
	placeholderFee   = "Contact for details"

	imageWidth     = 800
	thumbnailWidth = 400
)

// PhotoURLFunc builds a display URL for an upstream photo reference.
type PhotoURLFunc func(ref string, maxWidth int) string

// FromProviderResult converts one raw upstream place into the canonical
// Place, with distance computed from the scope origin. Returns false for a
// record too malformed to use; callers skip those and keep the rest of the
// batch. Optional fields (photos, rating, opening hours) default rather
// than fail.
func FromProviderResult(raw provider.PlaceResult, originLat, originLng float64, photoURL PhotoURLFunc) (Place, bool) {
	if raw.PlaceID == "" || raw.Geometry == nil {
		return Place{}, false
	}

	loc := raw.Geometry.Location
	distance := geo.RoundKm1(geo.HaversineKm(originLat, originLng, loc.Lat, loc.Lng))

	image := placeholderImage
	thumbnail := placeholderImage
	if len(raw.Photos) > 0 && raw.Photos[0].PhotoReference != "" && photoURL != nil {
		image = photoURL(raw.Photos[0].PhotoReference, imageWidth)
		thumbnail = photoURL(raw.Photos[0].PhotoReference, thumbnailWidth)
	}

	description := raw.Vicinity
	if description == "" {
		description = raw.FormattedAddress
	}
	if description == "" {
		description = "No description available"
	}

	return Place{
		ID:          raw.PlaceID,
		Name:        raw.Name,
		Category:    CategoryFor(raw.Types),
		Description: description,
		Location:    Location{Lat: loc.Lat, Lng: loc.Lng},
		Distance:    distance,
		Image:       image,
		Thumbnail:   thumbnail,
		Rating:      raw.Rating,
		Timings:     timingsFromHours(raw.OpeningHours),
		EntryFee:    placeholderFee,
	}, true
}

// timingsFromHours renders whatever the upstream payload exposes: structured
// weekly hours joined into one string, a live open/closed flag, or nothing.
func timingsFromHours(hours *provider.OpeningHours) string {
	if hours == nil {
		return "Hours not available"
	}
	if len(hours.WeekdayText) > 0 {
		return strings.Join(hours.WeekdayText, ", ")
	}
	if hours.OpenNow == nil {
		return "Hours not available"
	}
	if *hours.OpenNow {
		return "Open Now"
	}
	return "Closed"
}
