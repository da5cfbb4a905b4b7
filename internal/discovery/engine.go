package discovery

import (
	"sort"
	"strings"

	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
)

// Filter is either FilterAll or one of the place categories.
type Filter string

const FilterAll Filter = "all"

// SortKey selects the ordering of a derived list.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
	SortByEntryFee SortKey = "entryFee"
)

// ParseFilter maps a raw request value to a Filter; anything unrecognized
// means no category filtering.
func ParseFilter(raw string) Filter {
	switch places.Category(raw) {
	case places.CategoryTemple, places.CategoryTouristSpot, places.CategoryPark,
		places.CategoryMonument, places.CategoryMuseum:
		return Filter(raw)
	}
	return FilterAll
}

// ParseSortKey maps a raw request value to a SortKey, defaulting to distance.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortByRating, SortByEntryFee:
		return SortKey(raw)
	}
	return SortByDistance
}

// Derive turns the full place set plus the view state into the display list.
// Applied in order: free-text filter (case-insensitive substring against
// name, description, and category), category filter, then a stable sort by
// the chosen key. The input slice is never mutated; ties keep insertion
// order. An empty result is a valid outcome.
func Derive(fullSet []places.Place, query string, filter Filter, sortBy SortKey) []places.Place {
	result := make([]places.Place, 0, len(fullSet))

	query = strings.ToLower(strings.TrimSpace(query))
	for _, place := range fullSet {
		if query != "" && !matchesQuery(place, query) {
			continue
		}
		if filter != FilterAll && place.Category != places.Category(filter) {
			continue
		}
		result = append(result, place)
	}

	sort.SliceStable(result, func(i, j int) bool {
		switch sortBy {
		case SortByRating:
			return result[i].Rating > result[j].Rating
		case SortByEntryFee:
			return places.FeeSortKey(result[i].EntryFee) < places.FeeSortKey(result[j].EntryFee)
		default:
			return result[i].Distance < result[j].Distance
		}
	})

	return result
}

func matchesQuery(place places.Place, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(place.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(place.Description), lowerQuery) ||
		strings.Contains(strings.ToLower(string(place.Category)), lowerQuery)
}
