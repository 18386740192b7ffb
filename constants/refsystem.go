package constants

// RefSystem tags the notation/datum the source coordinates were reported in.
// It is provenance only; stored geodetic coordinates are always WGS84 decimal
// degrees and projected coordinates always UTM zone 19S.
type RefSystem string

const (
	// RefSystemWGS84DD marks coordinates reported directly as decimal degrees.
	RefSystemWGS84DD RefSystem = "WGS84-DD"
	// RefSystemWGS84DMS marks coordinates converted from degree-minute-second
	// notation.
	RefSystemWGS84DMS RefSystem = "WGS84-DMS>DD"
	// RefSystemGaussKrueger2 marks coordinates reprojected from Gauss-Krüger
	// faja 2 on the Campo Inchauspe 69 datum.
	RefSystemGaussKrueger2 RefSystem = "GK2-CAMPO-INCHAUSPE"
)
