package places

// Category is the closed set of domain categories a place can resolve to.
type Category string

const (
	CategoryTemple      Category = "Temple"
	CategoryTouristSpot Category = "Tourist Spot"
	CategoryPark        Category = "Park"
	CategoryMonument    Category = "Monument"
	CategoryMuseum      Category = "Museum"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is the canonical point-of-interest record, independent of the
// upstream provider's schema. Distance is kilometers from the scope origin,
// rounded to one decimal. A result set always shares a single origin.
type Place struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     Category   `json:"category"`
	Description  string     `json:"description"`
	Location     Location   `json:"location"`
	Distance     float64    `json:"distance"`
	Image        string     `json:"image"`
	Thumbnail    string     `json:"thumbnail"`
	Rating       float64    `json:"rating"`
	Timings      string     `json:"timings"`
	EntryFee     string     `json:"entryFee"`
	FestivalInfo []Festival `json:"festivalInfo,omitempty"`
}

type Festival struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	IsPast      bool     `json:"isPast"`
}

// Details is the on-demand detail view for a single place.
type Details struct {
	Name     string          `json:"name"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone"`
	Website  string          `json:"website,omitempty"`
	Rating   float64         `json:"rating"`
	Reviews  []DetailsReview `json:"reviews"`
	Photos   []string        `json:"photos"`
	Timings  string          `json:"timings"`
	Location Location        `json:"location"`
}

type DetailsReview struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Time   string  `json:"time"`
}

// LocationName is the reverse-geocode summary for a coordinate.
type LocationName struct {
	LocationName string `json:"locationName"`
	FullAddress  string `json:"fullAddress,omitempty"`
}
