package places

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Madhu-Juttiga/TourMate-2/internal/provider"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(stub *stubProvider) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app.Group("/api"), NewService(stub, nil), 50000)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func TestNearbyPlacesHandler(t *testing.T) {
	stub := &stubProvider{nearbyResults: []provider.PlaceResult{{
		PlaceID:  "p1",
		Name:     "Temple",
		Types:    []string{"hindu_temple"},
		Geometry: &provider.Geometry{Location: provider.Location{Lat: 9.92, Lng: 78.12}},
	}}}
	app := newTestApp(stub)

	resp := postJSON(t, app, "/api/nearby-places", fiber.Map{"latitude": 9.9252, "longitude": 78.1198})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Places []Place `json:"places"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Places) != 1 || out.Places[0].Category != CategoryTemple {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestNearbyPlacesHandlerRequiresCoordinates(t *testing.T) {
	app := newTestApp(&stubProvider{})
	resp := postJSON(t, app, "/api/nearby-places", fiber.Map{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestNearbyPlacesHandlerProviderError(t *testing.T) {
	app := newTestApp(&stubProvider{err: errors.New("REQUEST_DENIED")})
	resp := postJSON(t, app, "/api/nearby-places", fiber.Map{"latitude": 9.9, "longitude": 78.1})
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}

func TestNearbyPlacesHandlerEmptyListIsJSONArray(t *testing.T) {
	app := newTestApp(&stubProvider{})
	resp := postJSON(t, app, "/api/nearby-places", fiber.Map{"latitude": 9.9, "longitude": 78.1})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(raw, []byte(`"places":[]`)) {
		t.Fatalf("zero results must serialize as an empty array: %s", raw)
	}
}

func TestPlaceSearchHandler(t *testing.T) {
	stub := &stubProvider{searchResults: []provider.PlaceResult{{
		PlaceID:          "p1",
		Name:             "Gandhi Museum",
		Types:            []string{"museum"},
		FormattedAddress: "Madurai",
		Geometry:         &provider.Geometry{Location: provider.Location{Lat: 9.9312, Lng: 78.1215}},
	}}}
	app := newTestApp(stub)

	resp := postJSON(t, app, "/api/place-search", fiber.Map{
		"query":     "museum",
		"latitude":  9.9252,
		"longitude": 78.1198,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.lastQuery != "museum" {
		t.Fatalf("expected query forwarded, got %q", stub.lastQuery)
	}
}

func TestPlaceSearchHandlerRequiresQuery(t *testing.T) {
	app := newTestApp(&stubProvider{})
	resp := postJSON(t, app, "/api/place-search", fiber.Map{"latitude": 9.9, "longitude": 78.1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestPlaceDetailsHandler(t *testing.T) {
	stub := &stubProvider{details: provider.DetailsResult{
		Name:             "Meenakshi Amman Temple",
		FormattedAddress: "Madurai",
	}}
	app := newTestApp(stub)

	resp := postJSON(t, app, "/api/place-details", fiber.Map{"placeId": "p1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out Details
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Name != "Meenakshi Amman Temple" {
		t.Fatalf("unexpected details: %+v", out)
	}
}

func TestPlaceDetailsHandlerRequiresID(t *testing.T) {
	app := newTestApp(&stubProvider{})
	resp := postJSON(t, app, "/api/place-details", fiber.Map{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLocationNameHandler(t *testing.T) {
	stub := &stubProvider{geocode: []provider.GeocodeResult{{
		FormattedAddress: "Madurai, Tamil Nadu, India",
		AddressComponents: []provider.AddressComponent{
			{LongName: "Madurai", Types: []string{"locality"}},
			{LongName: "Tamil Nadu", ShortName: "TN", Types: []string{"administrative_area_level_1"}},
		},
	}}}
	app := newTestApp(stub)

	resp := postJSON(t, app, "/api/location-name", fiber.Map{"latitude": 9.9252, "longitude": 78.1198})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out LocationName
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.LocationName != "Madurai, TN" {
		t.Fatalf("unexpected location name: %q", out.LocationName)
	}
}

func TestLocationNameHandlerRequiresCoordinates(t *testing.T) {
	app := newTestApp(&stubProvider{})
	resp := postJSON(t, app, "/api/location-name", fiber.Map{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
