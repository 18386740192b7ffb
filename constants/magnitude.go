package constants

import "strings"

// Magnitude is the canonical incident magnitude per Res. 24-04 / Dec. 437-93.
// The Spanish labels are the regulatory vocabulary and are stored as-is.
type Magnitude string

const (
	MagnitudeMinor        Magnitude = "Menor"
	MagnitudeIntermediate Magnitude = "Intermedio"
	MagnitudeMajor        Magnitude = "Mayor"
	MagnitudeUndetermined Magnitude = "No determinado"
)

// Valid reports whether m is one of the four canonical values.
func (m Magnitude) Valid() bool {
	switch m {
	case MagnitudeMinor, MagnitudeIntermediate, MagnitudeMajor, MagnitudeUndetermined:
		return true
	}
	return false
}

// magnitudeKeywords maps free-form indicators found in reports (checkbox
// labels, severity words) onto the canonical enumeration.
var magnitudeKeywords = map[string]Magnitude{
	"BAJO":  MagnitudeMinor,
	"BAJA":  MagnitudeMinor,
	"MENOR": MagnitudeMinor,
	"MEDIO": MagnitudeIntermediate,
	"MEDIA": MagnitudeIntermediate,
	"ALTO":  MagnitudeMajor,
	"ALTA":  MagnitudeMajor,
	"GRAVE": MagnitudeMajor,
	"MAYOR": MagnitudeMajor,
}

// MapMagnitude resolves a free-form magnitude indicator to the canonical
// enumeration. Unmapped text yields MagnitudeUndetermined rather than an error;
// extraction must not fail on operator-specific wording.
func MapMagnitude(raw string) Magnitude {
	m, ok := magnitudeKeywords[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return MagnitudeUndetermined
	}
	return m
}
