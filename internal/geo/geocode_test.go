package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(serverURL string) *Geocoder {
	opts := DefaultGeocoderOptions()
	opts.BaseURL = serverURL
	return NewGeocoder(opts)
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("localityLanguage"))
		fmt.Fprint(w, `{"city":"Bengaluru","principalSubdivision":"Karnataka","countryName":"India","postcode":"560001"}`)
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	addr, err := g.Reverse(context.Background(), bangalore)
	require.NoError(t, err)

	assert.Equal(t, "Bengaluru", addr.City)
	assert.Equal(t, "Karnataka", addr.State)
	assert.Equal(t, "India", addr.Country)
	assert.Equal(t, "560001", addr.PostalCode)
}

func TestReverseGeocodeLocalityFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"locality":"Whitefield","countryName":"India"}`)
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	addr, err := g.Reverse(context.Background(), bangalore)
	require.NoError(t, err)

	assert.Equal(t, "Whitefield", addr.City)
}

func TestReverseGeocodeNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	_, err := g.Reverse(context.Background(), bangalore)
	require.Error(t, err)

	var geoErr *GeocodeError
	require.ErrorAs(t, err, &geoErr)
	assert.Contains(t, geoErr.Error(), "502")
}

func TestReverseGeocodeMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	g := newTestGeocoder(server.URL)
	_, err := g.Reverse(context.Background(), bangalore)
	require.Error(t, err)
}

func TestReverseGeocodeSequentialCallsHitUpstream(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"city":"Chennai","countryName":"India"}`)
	}))
	defer server.Close()

	// Without a cache configured every sequential lookup goes upstream.
	g := newTestGeocoder(server.URL)
	for i := 0; i < 3; i++ {
		_, err := g.Reverse(context.Background(), chennai)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 3, calls.Load())
}
