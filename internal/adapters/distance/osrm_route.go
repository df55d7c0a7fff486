package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"route-validator/internal/domain"
)

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance *float64 `json:"distance"`
		Duration *float64 `json:"duration"`
	} `json:"routes"`
}

// fetchRouteKm retrieves the driving distance of the first route between two points
// from the OSRM /route endpoint and converts it from meters to kilometers.
func (o *OSRMStrategy) fetchRouteKm(
	ctx context.Context,
	from domain.Coordinates,
	to domain.Coordinates,
) (float64, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s;%s",
		o.baseURL, o.profile, lonLat(from), lonLat(to),
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("overview", "false")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return 0, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var rr routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return 0, fmt.Errorf("decode route response: %w", err)
	}

	if rr.Code != "" && rr.Code != "Ok" {
		return 0, fmt.Errorf("route service returned code %q: %s", rr.Code, rr.Message)
	}

	if len(rr.Routes) == 0 {
		return 0, errors.New("route service returned no routes")
	}

	meters := rr.Routes[0].Distance
	if meters == nil || math.IsNaN(*meters) || math.IsInf(*meters, 0) || *meters < 0 {
		return 0, errors.New("route service returned an invalid distance")
	}

	return *meters / 1000, nil
}

func lonLat(c domain.Coordinates) string {
	return fmt.Sprintf("%f,%f", c.Lon, c.Lat)
}
