// Package geo resolves delivery destinations to coordinates and computes
// the distance-tiered delivery fee.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("location not found")

// Geocoder resolves a free-form address or pincode to coordinates.
type Geocoder interface {
	Geocode(query string) (lat, lon float64, err error)
}

// NominatimClient geocodes against a Nominatim-compatible endpoint with a
// bounded timeout. A slow geocoder fails fast into the fallback path, it
// never hangs the request.
type NominatimClient struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		BaseURL:   baseURL,
		UserAgent: "foodondoor-backend",
		HTTP:      &http.Client{Timeout: timeout},
	}
}

func (c *NominatimClient) Geocode(query string) (float64, float64, error) {
	u := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", c.BaseURL, url.QueryEscape(query))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, ErrNotFound
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

const earthRadiusKM = 6371.0

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Asin(math.Sqrt(a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FeeSchedule is the tiered-linear delivery fee: flat base fee within the
// free radius, then per-km beyond it. Business rule, kept as configuration.
type FeeSchedule struct {
	BaseFee      decimal.Decimal
	FreeRadiusKM float64
	PerKMRate    decimal.Decimal
}

// Fee computes the fee for a distance, rounded to 2 decimal places. The
// free-radius boundary is inclusive.
func (f FeeSchedule) Fee(distanceKM float64) decimal.Decimal {
	if distanceKM <= f.FreeRadiusKM {
		return f.BaseFee.Round(2)
	}
	extra := decimal.NewFromFloat(distanceKM - f.FreeRadiusKM)
	return f.BaseFee.Add(f.PerKMRate.Mul(extra)).Round(2)
}

// FeeQuoter resolves a destination and prices the delivery.
type FeeQuoter struct {
	Geocoder Geocoder
	Schedule FeeSchedule
	// Country is appended to pincode queries for disambiguation.
	Country string
}

// Quote geocodes the destination pincode and prices the distance from the
// vendor. On any geocoder failure it falls back to the base fee rather than
// rejecting the request; geocoder downtime must not block orders.
func (q *FeeQuoter) Quote(vendorLat, vendorLon float64, pincode string) (fee decimal.Decimal, distanceKM float64) {
	query := pincode
	if q.Country != "" {
		query = pincode + ", " + q.Country
	}
	lat, lon, err := q.Geocoder.Geocode(query)
	if err != nil {
		log.Printf("Geocoding failed for %q, using base delivery fee: %v", pincode, err)
		return q.Schedule.BaseFee.Round(2), 0
	}
	distanceKM = Haversine(vendorLat, vendorLon, lat, lon)
	return q.Schedule.Fee(distanceKM), distanceKM
}
