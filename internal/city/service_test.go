package city

import (
	"context"
	"testing"
	"time"

	"github.com/Madhu-Juttiga/TourMate-2/internal/discovery"
	"github.com/Madhu-Juttiga/TourMate-2/internal/places"
	"github.com/pashagolub/pgxmock/v3"
)

func cityRows(id string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "state", "lat", "lng", "created_at"}).
		AddRow(id, "Madurai", "Tamil Nadu", 9.9252, 78.1198, time.Now())
}

func placeColumns() []string {
	return []string{"id", "name", "category", "description", "lat", "lng", "image", "thumbnail", "rating", "timings", "entry_fee"}
}

func TestCreateAndGetCity(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO cities`).
		WithArgs(pgxmock.AnyArg(), "Madurai", "Tamil Nadu", 9.9252, 78.1198).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	svc := NewService(mock)
	created, err := svc.CreateCity(context.Background(), City{Name: "Madurai", State: "Tamil Nadu", Lat: 9.9252, Lng: 78.1198})
	if err != nil {
		t.Fatalf("create city: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	mock.ExpectQuery(`SELECT id, name, state, lat, lng, created_at`).
		WithArgs(created.ID).
		WillReturnRows(cityRows(created.ID))

	loaded, err := svc.GetCity(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get city: %v", err)
	}
	if loaded.Name != "Madurai" {
		t.Fatalf("unexpected city: %+v", loaded)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCities(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, state, lat, lng, created_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "state", "lat", "lng", "created_at"}).
			AddRow("c1", "Madurai", "Tamil Nadu", 9.9252, 78.1198, time.Now()).
			AddRow("c2", "Thanjavur", "Tamil Nadu", 10.7870, 79.1378, time.Now()))

	svc := NewService(mock)
	cities, err := svc.Cities(context.Background())
	if err != nil || len(cities) != 2 {
		t.Fatalf("cities: %v (%d)", err, len(cities))
	}
}

func TestAddPlaceDefaultsAndDistance(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, state, lat, lng, created_at`).
		WithArgs("c1").
		WillReturnRows(cityRows("c1"))
	mock.ExpectExec(`INSERT INTO city_places`).
		WithArgs(pgxmock.AnyArg(), "c1", "Meenakshi Amman Temple", "Temple",
			"Historic Hindu temple", 9.9195, 78.1193, "/placeholder.svg", "/placeholder.svg",
			4.8, "5:00 AM - 10:00 PM", "Free").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService(mock)
	created, err := svc.AddPlace(context.Background(), "c1", places.Place{
		Name:        "Meenakshi Amman Temple",
		Category:    places.CategoryTemple,
		Description: "Historic Hindu temple",
		Location:    places.Location{Lat: 9.9195, Lng: 78.1193},
		Rating:      4.8,
		Timings:     "5:00 AM - 10:00 PM",
		EntryFee:    "Free",
	})
	if err != nil {
		t.Fatalf("add place: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	// Distance comes from the city reference coordinate, ~0.6 km here.
	if created.Distance < 0.5 || created.Distance > 0.8 {
		t.Fatalf("unexpected distance: %v", created.Distance)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCityPlacesComputesDistancesFromCityOrigin(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, state, lat, lng, created_at`).
		WithArgs("c1").
		WillReturnRows(cityRows("c1"))
	mock.ExpectQuery(`SELECT id, name, category, description, lat, lng, image, thumbnail,`).
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows(placeColumns()).
			AddRow("p1", "Meenakshi Amman Temple", "Temple", "Historic temple", 9.9195, 78.1193, "/placeholder.svg", "/placeholder.svg", 4.8, "5:00 AM - 10:00 PM", "Free").
			AddRow("p2", "Gandhi Memorial Museum", "Museum", "Gandhi museum", 9.9312, 78.1215, "/placeholder.svg", "/placeholder.svg", 4.5, "10:00 AM - 5:30 PM", "₹10"))

	svc := NewService(mock)
	result, err := svc.CityPlaces(context.Background(), "c1")
	if err != nil {
		t.Fatalf("city places: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 places, got %d", len(result))
	}
	for _, p := range result {
		if p.Distance <= 0 || p.Distance > 5 {
			t.Fatalf("distance not derived from city origin: %+v", p)
		}
	}
}

func TestDiscoverAppliesEngine(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, state, lat, lng, created_at`).
		WithArgs("c1").
		WillReturnRows(cityRows("c1"))
	mock.ExpectQuery(`SELECT id, name, category, description, lat, lng, image, thumbnail,`).
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows(placeColumns()).
			AddRow("p1", "Meenakshi Amman Temple", "Temple", "Historic temple", 9.9195, 78.1193, "", "", 4.8, "", "Free").
			AddRow("p2", "Gandhi Memorial Museum", "Museum", "Gandhi museum", 9.9312, 78.1215, "", "", 4.5, "", "₹10"))

	svc := NewService(mock)
	result, err := svc.Discover(context.Background(), "c1", "", discovery.Filter(places.CategoryMuseum), discovery.SortByDistance)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(result) != 1 || result[0].ID != "p2" {
		t.Fatalf("expected engine to filter to the museum: %+v", result)
	}
}

func TestCityPlacesUnknownCity(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, state, lat, lng, created_at`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "state", "lat", "lng", "created_at"}))

	svc := NewService(mock)
	if _, err := svc.CityPlaces(context.Background(), "missing"); err == nil {
		t.Fatalf("expected error for unknown city")
	}
}
