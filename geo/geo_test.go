package geo

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() FeeSchedule {
	return FeeSchedule{
		BaseFee:      decimal.RequireFromString("20.0"),
		FreeRadiusKM: 5.0,
		PerKMRate:    decimal.RequireFromString("5.0"),
	}
}

func TestFeeWithinFreeRadius(t *testing.T) {
	s := testSchedule()
	assert.Equal(t, "20", s.Fee(0).String())
	assert.Equal(t, "20", s.Fee(3).String())
}

func TestFeeBoundaryInclusive(t *testing.T) {
	s := testSchedule()
	// Exactly at the radius still pays only the base fee
	assert.Equal(t, "20", s.Fee(5.0).String())
}

func TestFeeBeyondRadius(t *testing.T) {
	s := testSchedule()
	assert.Equal(t, "35", s.Fee(8).String())         // 20 + 3*5
	assert.Equal(t, "22.5", s.Fee(5.5).String())     // 20 + 0.5*5
	assert.Equal(t, "26.17", s.Fee(6.2345).String()) // rounded to 2dp
}

func TestHaversine(t *testing.T) {
	// Same point
	assert.InDelta(t, 0, Haversine(12.97, 77.59, 12.97, 77.59), 1e-9)

	// Bengaluru to Chennai is roughly 290 km
	d := Haversine(12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, d, 10)

	// Symmetric
	assert.InDelta(t, d, Haversine(13.0827, 80.2707, 12.9716, 77.5946), 1e-9)

	// One degree of latitude is about 111 km
	assert.InDelta(t, 111.19, Haversine(0, 0, 1, 0), 0.1)
}

type stubGeocoder struct {
	lat, lon float64
	err      error
}

func (s stubGeocoder) Geocode(string) (float64, float64, error) {
	return s.lat, s.lon, s.err
}

func TestQuoteUsesGeocodedDistance(t *testing.T) {
	vendorLat, vendorLon := 12.9716, 77.5946

	// A destination ~0.0719 degrees north is ~8 km away
	q := &FeeQuoter{
		Geocoder: stubGeocoder{lat: vendorLat + 8.0/111.19, lon: vendorLon},
		Schedule: testSchedule(),
		Country:  "India",
	}

	fee, dist := q.Quote(vendorLat, vendorLon, "560001")
	assert.InDelta(t, 8.0, dist, 0.05)
	// 20 + ~3km * 5 = ~35
	f, _ := fee.Float64()
	assert.InDelta(t, 35.0, f, 0.3)
}

func TestQuoteFallsBackOnGeocoderFailure(t *testing.T) {
	q := &FeeQuoter{
		Geocoder: stubGeocoder{err: errors.New("connection refused")},
		Schedule: testSchedule(),
	}
	fee, dist := q.Quote(12.97, 77.59, "560001")
	assert.Equal(t, "20", fee.String())
	assert.Equal(t, 0.0, dist)
}

func TestQuoteFallsBackOnUnknownLocation(t *testing.T) {
	q := &FeeQuoter{
		Geocoder: stubGeocoder{err: ErrNotFound},
		Schedule: testSchedule(),
	}
	fee, _ := q.Quote(12.97, 77.59, "000000")
	assert.Equal(t, "20", fee.String())
}

func TestNominatimClientParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, `[{"lat":"12.9716","lon":"77.5946"}]`)
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, 2*time.Second)
	lat, lon, err := c.Geocode("560001, India")
	require.NoError(t, err)
	assert.InDelta(t, 12.9716, lat, 1e-6)
	assert.InDelta(t, 77.5946, lon, 1e-6)
}

func TestNominatimClientNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, 2*time.Second)
	_, _, err := c.Geocode("nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNominatimClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewNominatimClient(srv.URL, 2*time.Second)
	_, _, err := c.Geocode("560001")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
