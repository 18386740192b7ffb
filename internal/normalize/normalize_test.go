package normalize

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviro-data/incident-etl/constants"
)

func fptr(v float64) *float64 { return &v }

func TestFindString(t *testing.T) {
	re := regexp.MustCompile(`Yacimiento:\s*([^\n]+)`)

	tests := []struct {
		name  string
		text  string
		group int
		want  string
	}{
		{"match with group", "Yacimiento: DESFILADERO BAYO\n", 1, "DESFILADERO BAYO"},
		{"trims surrounding space", "Yacimiento:   La Ventana  \n", 1, "La Ventana"},
		{"no match", "Cuenca: NEUQUINA\n", 1, ""},
		{"group out of range falls back to whole match", "Yacimiento: JCP\n", 7, "Yacimiento: JCP"},
		{"negative group falls back to whole match", "Yacimiento: JCP\n", -1, "Yacimiento: JCP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindString(re, tt.text, tt.group))
		})
	}
}

func TestFindFloat(t *testing.T) {
	re := regexp.MustCompile(`Volumen:\s*([\d.,]+)`)

	got := FindFloat(re, "Volumen: 1,50 m3", 1)
	require.NotNil(t, got)
	assert.InDelta(t, 1.5, *got, 1e-9)

	assert.Nil(t, FindFloat(re, "sin volumen", 1))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{"dot decimal", "8.5000", fptr(8.5)},
		{"comma decimal", "0,015", fptr(0.015)},
		{"integer", "7", fptr(7)},
		{"padded", "  1250.00 ", fptr(1250)},
		{"not a number", "menor a 50", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFloat(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"slash full year", "10/10/2025", "10-10-2025"},
		{"slash single-digit month", "12/2/2026", "12-02-2026"},
		{"slash two-digit year", "10/10/25", "10-10-2025"},
		{"dash full year", "18-02-2026", "18-02-2026"},
		{"iso", "2025-10-10", "10-10-2025"},
		{"unsupported format", "October 10, 2025", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.raw))
		})
	}
}

func TestInferMagnitude(t *testing.T) {
	tests := []struct {
		name string
		vol  *float64
		ppm  *float64
		want constants.Magnitude
	}{
		{"high concentration above 5m3", fptr(8), fptr(60), constants.MagnitudeMajor},
		{"low concentration below 10m3", fptr(8), fptr(30), constants.MagnitudeMinor},
		{"low concentration above 10m3", fptr(12), fptr(30), constants.MagnitudeMajor},
		{"unknown concentration uses 5m3 threshold", fptr(6), nil, constants.MagnitudeMajor},
		{"small spill", fptr(1.1), nil, constants.MagnitudeMinor},
		{"exactly at threshold is minor", fptr(5), nil, constants.MagnitudeMinor},
		{"unknown volume", nil, fptr(60), constants.MagnitudeUndetermined},
		{"unknown everything", nil, nil, constants.MagnitudeUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferMagnitude(tt.vol, tt.ppm))
		})
	}
}

func TestInBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		lat  *float64
		lon  *float64
		want bool
	}{
		{"inside", fptr(-34.9643), fptr(-69.5332), true},
		{"on the boundary", fptr(-39.0), fptr(-67.0), true},
		{"latitude too far south", fptr(-39.5), fptr(-68.5), false},
		{"longitude too far east", fptr(-34.0), fptr(-58.4), false},
		{"positive hemisphere typo", fptr(34.9643), fptr(-69.5332), false},
		{"nil latitude", nil, fptr(-68.5), false},
		{"nil longitude", fptr(-34.0), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InBoundingBox(tt.lat, tt.lon))
		})
	}
}
