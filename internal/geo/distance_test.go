package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	bangalore = Coordinates{Latitude: 12.9716, Longitude: 77.5946}
	chennai   = Coordinates{Latitude: 13.0827, Longitude: 80.2707}
	pune      = Coordinates{Latitude: 18.5204, Longitude: 73.8567}
)

func TestDistanceSymmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinates
	}{
		{"bangalore-chennai", bangalore, chennai},
		{"bangalore-pune", bangalore, pune},
		{"antipodal-ish", Coordinates{Latitude: 45, Longitude: 90}, Coordinates{Latitude: -45, Longitude: -90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestDistanceIdentity(t *testing.T) {
	assert.Zero(t, Distance(bangalore, bangalore))
	assert.Zero(t, Distance(Coordinates{}, Coordinates{}))
}

func TestDistanceKnownPairs(t *testing.T) {
	// Bangalore to Chennai is roughly 290 km as the crow flies.
	d := Distance(bangalore, chennai)
	assert.InDelta(t, 290, d, 10)

	// Bangalore to Pune is roughly 730 km.
	d = Distance(bangalore, pune)
	assert.InDelta(t, 730, d, 15)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		km       float64
		expected string
	}{
		{"meters", 0.35, "350m"},
		{"just under a km", 0.999, "999m"},
		{"one decimal", 4.25, "4.2km"},
		{"just under ten", 9.94, "9.9km"},
		{"rounded", 12.6, "13km"},
		{"large", 287.3, "287km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDistance(tt.km))
		})
	}
}
