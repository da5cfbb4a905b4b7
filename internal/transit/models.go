package transit

// BusType is the closed set of service classes a leg can advertise.
type BusType string

const (
	BusTypeAC      BusType = "AC"
	BusTypeNonAC   BusType = "Non-AC"
	BusTypeExpress BusType = "Express"
	BusTypeLuxury  BusType = "Luxury"
	BusTypeDeluxe  BusType = "Deluxe"
	BusTypeGaruda  BusType = "Garuda"
)

// Bus is one transit leg toward the selected destination. IDs are unique
// within a single response only; a new destination replaces the whole set.
// The upstream provider does not publish fares, so Fare stays 0 with
// FareKnown false rather than a fabricated number.
type Bus struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Name          string  `json:"name"`
	Type          BusType `json:"type"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Fare          int     `json:"fare"`
	FareKnown     bool    `json:"fareKnown"`
	Route         string  `json:"route"`
}
