package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// nearbyTypes mirrors the type filter the app has always requested upstream.
const nearbyTypes = "tourist_attraction|hindu_temple|museum|monument|park"

// Client calls the upstream places/geocoding/directions provider. The API
// key stays server-side; it is appended to outbound requests only.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PhotoURL builds a provider photo URL for a photo reference.
func (c *Client) PhotoURL(ref string, maxWidth int) string {
	params := url.Values{}
	params.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	params.Set("photo_reference", ref)
	params.Set("key", c.apiKey)
	return c.baseURL + "/maps/api/place/photo?" + params.Encode()
}

func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radiusM int) ([]PlaceResult, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusM))
	params.Set("type", nearbyTypes)

	var resp PlacesResponse
	if err := c.get(ctx, "/maps/api/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) TextSearch(ctx context.Context, query string, lat, lng float64, radiusM int) ([]PlaceResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusM))

	var resp PlacesResponse
	if err := c.get(ctx, "/maps/api/place/textsearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) Details(ctx context.Context, placeID string) (DetailsResult, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,opening_hours,website,rating,reviews,photos,geometry,types")

	var resp DetailsResponse
	if err := c.get(ctx, "/maps/api/place/details/json", params, &resp); err != nil {
		return DetailsResult{}, err
	}
	if resp.Status != statusOK {
		return DetailsResult{}, statusError(resp.Status, resp.ErrorMessage)
	}
	return resp.Result, nil
}

func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) ([]GeocodeResult, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))

	var resp GeocodeResponse
	if err := c.get(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK {
		return nil, statusError(resp.Status, resp.ErrorMessage)
	}
	return resp.Results, nil
}

// TransitDirections requests transit-mode routes with alternatives. A
// ZERO_RESULTS status yields an empty response, not an error.
func (c *Client) TransitDirections(ctx context.Context, originLat, originLng, destLat, destLng float64) (DirectionsResponse, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", originLat, originLng))
	params.Set("destination", fmt.Sprintf("%f,%f", destLat, destLng))
	params.Set("mode", "transit")
	params.Set("alternatives", "true")

	var resp DirectionsResponse
	if err := c.get(ctx, "/maps/api/directions/json", params, &resp); err != nil {
		return DirectionsResponse{}, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return DirectionsResponse{}, err
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}

func checkStatus(status, errorMessage string) error {
	if status == statusOK || status == statusZeroResults {
		return nil
	}
	return statusError(status, errorMessage)
}

func statusError(status, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unknown error"
	}
	return fmt.Errorf("provider error: %s - %s", status, errorMessage)
}
