// Package geo converts the coordinate notations found in operator reports
// into WGS84 decimal degrees, and projects decimal degrees into UTM zone 19S
// for area and distance math. The operational region is entirely south and
// west, so parsed DMS values are always forced negative.
package geo

import (
	"math"
	"regexp"

	"github.com/wroge/wgs84"

	"github.com/enviro-data/incident-etl/internal/normalize"
)

var (
	// campoInchauspe is the Campo Inchauspe 69 datum on the International 1924
	// ellipsoid, with the EPSG Helmert shift to WGS84.
	campoInchauspe = wgs84.Helmert(6378388, 297, -148, 136, 90, 0, 0, 0, 0)

	// gaussKrueger2 is Gauss-Krüger faja 2: central meridian 69°W, origin at
	// the south pole, false easting 2,500,000 m. Pluspetrol reports in this
	// system.
	gaussKrueger2 = campoInchauspe.TransverseMercator(-69, -90, 1, 2500000, 0)

	// utm19S is the projected system for the operational region.
	utm19S = wgs84.UTM(19, false)
)

var (
	// dmsCompactRe matches compact notation: 33°30'57,62" or 34°57´51,5".
	dmsCompactRe = regexp.MustCompile(`(\d+)[°º]\s*(\d+)\s*[´'′’]\s*([\d.,]+)`)

	// dmsSegmentedRe matches slash-segmented notation: 37 ° / 20 ' / 56.2 ''.
	dmsSegmentedRe = regexp.MustCompile(`(\d+)\s*[°º]\s*/\s*(\d+)\s*[´'′’]\s*/\s*([\d.,]+)`)

	// dmsDegMinRe matches degrees with decimal minutes only: 37 ° / 20.936 '.
	dmsDegMinRe = regexp.MustCompile(`(\d+)\s*[°º]\s*/?\s*([\d.,]+)\s*[´'′’]`)
)

// ParseDMS parses a degree-minute-second string in any of the three notations
// used by the operators and returns decimal degrees, negative-forced for the
// southern/western hemisphere. Returns nil when the string matches no notation
// or carries out-of-range minutes or seconds (a known typo mode in source
// reports, e.g. seconds of 84,82).
func ParseDMS(raw string) *float64 {
	for _, re := range []*regexp.Regexp{dmsCompactRe, dmsSegmentedRe} {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		deg := normalize.ParseFloat(m[1])
		min := normalize.ParseFloat(m[2])
		sec := normalize.ParseFloat(m[3])
		if deg == nil || min == nil || sec == nil {
			return nil
		}
		return dmsToDD(*deg, *min, *sec)
	}

	if m := dmsDegMinRe.FindStringSubmatch(raw); m != nil {
		deg := normalize.ParseFloat(m[1])
		min := normalize.ParseFloat(m[2])
		if deg == nil || min == nil {
			return nil
		}
		return dmsToDD(*deg, *min, 0)
	}

	return nil
}

// dmsToDD converts degree/minute/second components to decimal degrees rounded
// to six places. The sign is always negative: all report coordinates are
// south latitude or west longitude. Out-of-range components yield nil.
func dmsToDD(deg, min, sec float64) *float64 {
	if deg > 180 || min >= 60 || sec >= 60 {
		return nil
	}
	dd := -(deg + min/60 + sec/3600)
	dd = math.Round(dd*1e6) / 1e6
	return &dd
}

// FromGaussKrueger2 reprojects Gauss-Krüger faja 2 grid coordinates (Campo
// Inchauspe 69) to WGS84 decimal degrees. The transform is deterministic;
// results are exact up to the reprojection's numerical precision.
func FromGaussKrueger2(easting, northing float64) (lat, lon float64) {
	lonOut, latOut, _ := wgs84.Transform(gaussKrueger2, wgs84.LonLat()).Round(6)(easting, northing, 0)
	return latOut, lonOut
}

// ToUTM19S projects WGS84 decimal degrees into UTM zone 19S, rounded to
// centimeter precision. Returns (nil, nil) if either input is missing; the
// caller is responsible for bounding-box validation beforehand.
func ToUTM19S(lat, lon *float64) (easting, northing *float64) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	e, n, _ := wgs84.Transform(wgs84.LonLat(), utm19S).Round(2)(*lon, *lat, 0)
	return &e, &n
}
