// Package normalize holds the shared field-normalization utilities used by
// every operator extractor: safe pattern search, numeric coercion with comma
// decimal separators, date canonicalization, the magnitude-inference fallback,
// and the operational bounding-box check.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/enviro-data/incident-etl/constants"
)

// Valid geographic range for Mendoza, WGS84 decimal degrees. The southern
// limit of -39.0 covers Chihuido de la Sierra Negra on the Mendoza/Neuquén
// border.
const (
	LatMin = -39.0
	LatMax = -32.0
	LonMin = -70.0
	LonMax = -67.0
)

// dateLayouts is the fixed ordered list of accepted input date formats.
// Non-padded layouts also accept zero-padded day and month.
var dateLayouts = []string{
	"2/1/2006", // 10/10/2025, 12/2/2026
	"2/1/06",   // 10/10/25
	"2-1-2006", // 18-02-2026
	"2-1-06",   // 10-10-25
	"2006-1-2", // 2025-10-10
}

// canonicalDateLayout is the single output representation, dd-mm-yyyy.
const canonicalDateLayout = "02-01-2006"

// FindString returns the given capture group of the first match of re in
// text, trimmed, or "" if there is no match. If the group index does not
// exist for the pattern, the whole match is returned instead; the function
// never panics on malformed input.
func FindString(re *regexp.Regexp, text string, group int) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if group < 0 || group >= len(m) {
		return strings.TrimSpace(m[0])
	}
	return strings.TrimSpace(m[group])
}

// FindFloat locates a numeric field via re and coerces it, tolerating comma
// decimal separators. Returns nil when the pattern does not match or the
// matched text is not a number.
func FindFloat(re *regexp.Regexp, text string, group int) *float64 {
	raw := FindString(re, text, group)
	if raw == "" {
		return nil
	}
	return ParseFloat(raw)
}

// ParseFloat coerces a raw numeric string, accepting "," as the decimal
// separator. Returns nil on failure rather than an error; a malformed number
// in one field must not abort extraction of the rest.
func ParseFloat(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Date converts any supported date format to the canonical dd-mm-yyyy form.
// Returns "" if raw is empty or matches none of the supported layouts.
func Date(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(canonicalDateLayout)
		}
	}
	return ""
}

// InferMagnitude derives the incident magnitude from spilled volume and
// hydrocarbon concentration per Res. 24-04 / Dec. 437-93:
//
//   - HC > 50 ppm and vol > 5 m3  → Mayor
//   - HC ≤ 50 ppm and vol > 10 m3 → Mayor
//   - below the applicable threshold → Menor
//   - unknown volume → No determinado
//
// Unknown ppm assumes the conservative (lower) 5 m3 threshold.
//
// This is a fallback for reports that omit an explicit magnitude. It is an
// approximation: the regulation also weighs qualitative factors such as
// watercourse impact, so the operator's own classification can differ.
func InferMagnitude(volM3, ppm *float64) constants.Magnitude {
	if volM3 == nil {
		return constants.MagnitudeUndetermined
	}

	threshold := 5.0
	if ppm != nil && *ppm <= 50 {
		threshold = 10.0
	}

	if *volM3 > threshold {
		return constants.MagnitudeMajor
	}
	return constants.MagnitudeMinor
}

// InBoundingBox reports whether a coordinate pair falls inside the Mendoza
// operational bounding box. A nil component always fails.
func InBoundingBox(lat, lon *float64) bool {
	if lat == nil || lon == nil {
		return false
	}
	return LatMin <= *lat && *lat <= LatMax &&
		LonMin <= *lon && *lon <= LonMax
}
