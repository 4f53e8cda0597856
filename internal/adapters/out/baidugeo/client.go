// Package baidugeo implements the GeoProvider port over the Baidu Maps web
// APIs: the geocoding service for address resolution and the lightweight
// driving-direction service for route distances.
package baidugeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"takeout/internal/core/ports"
	"takeout/internal/pkg/errs"
)

const (
	providerName = "baidu"

	geocodePath = "/geocoding/v3/"
	drivingPath = "/directionlite/v1/driving"
)

// Client calls the Baidu Maps web APIs.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geo client. An empty baseURL falls back to the public
// API host; tests point it at a local server.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = "https://api.map.baidu.com"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	Result struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"result"`
}

// Geocode resolves a free-form address into coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (ports.Location, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("output", "json")
	params.Set("ak", c.apiKey)

	var decoded geocodeResponse
	if err := c.get(ctx, geocodePath, params, &decoded); err != nil {
		return ports.Location{}, errs.NewExternalProviderError(providerName, "geocode", err)
	}
	if decoded.Status != 0 {
		return ports.Location{}, errs.NewExternalProviderError(providerName, "geocode",
			fmt.Errorf("status %d: %s", decoded.Status, decoded.Msg))
	}

	return ports.Location{
		Lat: decoded.Result.Location.Lat,
		Lng: decoded.Result.Location.Lng,
	}, nil
}

type drivingResponse struct {
	Status int    `json:"status"`
	Msg    string `json:"message"`
	Result struct {
		Routes []struct {
			Distance int `json:"distance"`
		} `json:"routes"`
	} `json:"result"`
}

// RouteDistance returns the driving distance in meters between two points.
func (c *Client) RouteDistance(ctx context.Context, from, to ports.Location) (int, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", from.Lat, from.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", to.Lat, to.Lng))
	params.Set("ak", c.apiKey)

	var decoded drivingResponse
	if err := c.get(ctx, drivingPath, params, &decoded); err != nil {
		return 0, errs.NewExternalProviderError(providerName, "route distance", err)
	}
	if decoded.Status != 0 {
		return 0, errs.NewExternalProviderError(providerName, "route distance",
			fmt.Errorf("status %d: %s", decoded.Status, decoded.Msg))
	}
	if len(decoded.Result.Routes) == 0 {
		return 0, errs.NewExternalProviderError(providerName, "route distance",
			fmt.Errorf("no route found"))
	}

	return decoded.Result.Routes[0].Distance, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected http status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
