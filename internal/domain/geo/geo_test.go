package geo

import (
	"math"
	"testing"

	"beacon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	p := entity.Location{Latitude: 37.98, Longitude: 23.73}

	assert.Zero(t, Distance(p, p))
}

func TestDistance_AntipodalPoints(t *testing.T) {
	a := entity.Location{Latitude: 0, Longitude: 0}
	b := entity.Location{Latitude: 0, Longitude: 180}

	// Half the Earth's circumference, ~20015 km.
	assert.InDelta(t, 20015.0, Distance(a, b), 5.0)
}

func TestDistance_KnownPair(t *testing.T) {
	athens := entity.Location{Latitude: 37.9838, Longitude: 23.7275}
	thessaloniki := entity.Location{Latitude: 40.6401, Longitude: 22.9444}

	// Straight-line distance is roughly 300 km.
	assert.InDelta(t, 300.0, Distance(athens, thessaloniki), 10.0)
}

func TestWithinRadius(t *testing.T) {
	tests := []struct {
		name  string
		area  entity.OperatingArea
		point entity.Location
		want  bool
	}{
		{
			name:  "point at center with positive radius",
			area:  entity.OperatingArea{Center: entity.Location{Latitude: 0, Longitude: 0}, RadiusKm: 1},
			point: entity.Location{Latitude: 0, Longitude: 0},
			want:  true,
		},
		{
			name:  "point at center with zero radius",
			area:  entity.OperatingArea{Center: entity.Location{Latitude: 0, Longitude: 0}, RadiusKm: 0},
			point: entity.Location{Latitude: 0, Longitude: 0},
			want:  true,
		},
		{
			name:  "point far outside a small radius",
			area:  entity.OperatingArea{Center: entity.Location{Latitude: 0, Longitude: 0}, RadiusKm: 1},
			point: entity.Location{Latitude: 10, Longitude: 10},
			want:  false,
		},
		{
			name:  "point just inside the radius",
			area:  entity.OperatingArea{Center: entity.Location{Latitude: 37.98, Longitude: 23.73}, RadiusKm: 5},
			point: entity.Location{Latitude: 37.99, Longitude: 23.74},
			want:  true,
		},
		{
			name:  "NaN coordinates never match",
			area:  entity.OperatingArea{Center: entity.Location{Latitude: math.NaN(), Longitude: math.NaN()}, RadiusKm: 100},
			point: entity.Location{Latitude: 0, Longitude: 0},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinRadius(tt.area, tt.point))
		})
	}
}

func TestWithinRadius_Idempotent(t *testing.T) {
	area := entity.OperatingArea{Center: entity.Location{Latitude: 37.98, Longitude: 23.73}, RadiusKm: 5}
	point := entity.Location{Latitude: 37.99, Longitude: 23.74}

	first := WithinRadius(area, point)
	second := WithinRadius(area, point)

	assert.Equal(t, first, second)
}
