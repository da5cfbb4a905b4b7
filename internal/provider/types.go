package provider

// Wire types for the Google-style places/geocoding/directions APIs. Only the
// fields the normalizers read are mapped.

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location Location `json:"location"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type PlaceResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Types            []string      `json:"types"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Vicinity         string        `json:"vicinity,omitempty"`
	FormattedAddress string        `json:"formatted_address,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Photos           []Photo       `json:"photos,omitempty"`
}

type PlacesResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []PlaceResult `json:"results"`
}

type DetailsResult struct {
	Name                 string        `json:"name"`
	FormattedAddress     string        `json:"formatted_address"`
	FormattedPhoneNumber string        `json:"formatted_phone_number,omitempty"`
	Website              string        `json:"website,omitempty"`
	Rating               float64       `json:"rating,omitempty"`
	Reviews              []Review      `json:"reviews,omitempty"`
	Photos               []Photo       `json:"photos,omitempty"`
	OpeningHours         *OpeningHours `json:"opening_hours,omitempty"`
	Geometry             *Geometry     `json:"geometry,omitempty"`
	Types                []string      `json:"types,omitempty"`
}

type Review struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
}

type DetailsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Result       DetailsResult `json:"result"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []AddressComponent `json:"address_components"`
}

type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

type DirectionsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

type Route struct {
	Legs []Leg `json:"legs"`
}

type Leg struct {
	Steps []Step `json:"steps"`
}

type Step struct {
	TravelMode     string          `json:"travel_mode"`
	TransitDetails *TransitDetails `json:"transit_details,omitempty"`
}

type TransitDetails struct {
	Line          TransitLine `json:"line"`
	DepartureTime TimeText    `json:"departure_time"`
	ArrivalTime   TimeText    `json:"arrival_time"`
	DepartureStop Stop        `json:"departure_stop"`
	ArrivalStop   Stop        `json:"arrival_stop"`
}

type TransitLine struct {
	Name      string  `json:"name"`
	ShortName string  `json:"short_name,omitempty"`
	Vehicle   Vehicle `json:"vehicle"`
}

type Vehicle struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

type TimeText struct {
	Text string `json:"text"`
}

type Stop struct {
	Name string `json:"name"`
}
