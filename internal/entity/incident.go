package entity

import (
	"time"

	"github.com/enviro-data/incident-etl/constants"
)

// Incident represents one normalized spill report for data transfer between layers.
// String fields are empty and numeric pointers nil when the source report omits
// the value or its pattern did not match.
type Incident struct {
	IncidentID string             `json:"incident_id"`
	Operator   constants.Operator `json:"operator"`

	ConcessionArea  string `json:"concession_area,omitempty"`
	Field           string `json:"field,omitempty"`
	Basin           string `json:"basin,omitempty"`
	OperationalArea string `json:"operational_area,omitempty"`

	Installation        string `json:"installation,omitempty"`
	InstallationType    string `json:"installation_type,omitempty"`
	IncidentSubtype     string `json:"incident_subtype,omitempty"`
	Cause               string `json:"cause,omitempty"`
	Description         string `json:"description,omitempty"`
	Measures            string `json:"measures,omitempty"`
	Responsible         string `json:"responsible,omitempty"`
	Location            string `json:"location,omitempty"`
	Code                string `json:"code,omitempty"`
	AffectedResources   string `json:"affected_resources,omitempty"`

	Magnitude constants.Magnitude `json:"magnitude"`

	OccurrenceDate string `json:"occurrence_date,omitempty"` // canonical dd-mm-yyyy
	OccurrenceTime string `json:"occurrence_time,omitempty"`
	EstimatedTime  string `json:"estimated_time,omitempty"`

	VolumeSpilledM3   *float64 `json:"volume_spilled_m3,omitempty"`
	VolumeRecoveredM3 *float64 `json:"volume_recovered_m3,omitempty"`
	VolumeGasM3       *float64 `json:"volume_gas_m3,omitempty"`
	WaterPct          *float64 `json:"water_pct,omitempty"`
	AffectedAreaM2    *float64 `json:"affected_area_m2,omitempty"`
	HydrocarbonPPM    string   `json:"hydrocarbon_ppm,omitempty"` // free text, operator-dependent

	LatitudeDD  *float64             `json:"latitude_dd,omitempty"`  // WGS84, negative (south)
	LongitudeDD *float64             `json:"longitude_dd,omitempty"` // WGS84, negative (west)
	EastingM    *float64             `json:"easting_m,omitempty"`    // UTM 19S, derived
	NorthingM   *float64             `json:"northing_m,omitempty"`   // UTM 19S, derived
	RefSystem   constants.RefSystem  `json:"source_reference_system,omitempty"`

	SourceFile string    `json:"source_file,omitempty"`
	IngestedAt time.Time `json:"ingested_at"`
}

// HasGeodetic reports whether both geodetic coordinates are present.
func (i *Incident) HasGeodetic() bool {
	return i.LatitudeDD != nil && i.LongitudeDD != nil
}
