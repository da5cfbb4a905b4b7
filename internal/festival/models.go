package festival

import "time"

// Festival is a curated annual event attached to a place. OccursOn holds
// the next or most recent occurrence; Date is the display label shown to
// clients ("14 April 2026"). IsPast is derived on read, never stored.
type Festival struct {
	ID          string    `json:"id"`
	PlaceID     string    `json:"placeId"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	OccursOn    time.Time `json:"occursOn"`
	Description string    `json:"description"`
	Images      []string  `json:"images,omitempty"`
	IsPast      bool      `json:"isPast"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Photo struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"placeId"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
