package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/entity"
	"github.com/enviro-data/incident-etl/internal/geo"
	"github.com/enviro-data/incident-etl/internal/normalize"
)

// Pluspetrol comunicados report position as Gauss-Krüger faja 2 grid
// coordinates on Campo Inchauspe 69. The form labels X as the northing and Y
// as the easting, which is the Argentine GK convention and the opposite of
// the usual map-axis reading.
var (
	pluspetrolIncidentRe   = regexp.MustCompile(`COMUNICADO N[°º]:\s*([\d/]+)`)
	pluspetrolDateRe       = regexp.MustCompile(`FECHA:\s*(\d{1,2}/\d{1,2}/\d{4})`)
	pluspetrolTimeRe       = regexp.MustCompile(`HORA:\s*(\d{1,2}:\d{2})`)
	pluspetrolConcessionRe = regexp.MustCompile(`CONCESION:\s*(\w+)`)
	pluspetrolFieldRe      = regexp.MustCompile(`YACIMIENTO:\s*(\w+)`)
	pluspetrolCodeRe       = regexp.MustCompile(`CÓDIGO:\s*([\w_]+)`)
	pluspetrolLocationRe   = regexp.MustCompile(`UBICACIÓN ESPECÍFICA:\s*([^\n]+)`)
	pluspetrolNorthingRe   = regexp.MustCompile(`X:\s*(\d+)`)
	pluspetrolEastingRe    = regexp.MustCompile(`Y:\s*(\d+)`)
	pluspetrolVolSpillRe   = regexp.MustCompile(`Vol\. derramado:\s*([\d.,]+)`)
	pluspetrolVolRecovRe   = regexp.MustCompile(`Volumen recuperado:\s*([\d.,]+)`)
	pluspetrolAreaRe       = regexp.MustCompile(`Sup\. Afectada:\s*([\d.,]+)`)
	pluspetrolWaterRe      = regexp.MustCompile(`\(?([\d.,]+)\s*%\s*agua`)
	pluspetrolDescRe       = regexp.MustCompile(`DESCRIPCIÓN:\s*([^\n]+)`)
)

type Pluspetrol struct {
	log *slog.Logger
}

func NewPluspetrol(logger *slog.Logger) *Pluspetrol {
	return &Pluspetrol{log: logger}
}

func (e *Pluspetrol) Operator() constants.Operator { return constants.OperatorPluspetrol }

func (e *Pluspetrol) Extract(text string) entity.Incident {
	inc := entity.Incident{
		Operator:  constants.OperatorPluspetrol,
		RefSystem: constants.RefSystemGaussKrueger2,
	}

	inc.IncidentID = normalize.FindString(pluspetrolIncidentRe, text, 1)

	inc.ConcessionArea = normalize.FindString(pluspetrolConcessionRe, text, 1)
	if inc.ConcessionArea == "" {
		// Pluspetrol only reports from the JCP concession in this province.
		inc.ConcessionArea = "JCP"
	}
	inc.Field = normalize.FindString(pluspetrolFieldRe, text, 1)
	inc.Code = normalize.FindString(pluspetrolCodeRe, text, 1)
	inc.Location = normalize.FindString(pluspetrolLocationRe, text, 1)
	inc.Description = normalize.FindString(pluspetrolDescRe, text, 1)

	if raw := normalize.FindString(pluspetrolDateRe, text, 1); raw != "" {
		inc.OccurrenceDate = normalize.Date(raw)
		if inc.OccurrenceDate == "" {
			e.log.Warn("unrecognized date format", "operator", inc.Operator, "raw", raw)
		}
	}
	inc.OccurrenceTime = normalize.FindString(pluspetrolTimeRe, text, 1)

	northing := normalize.FindFloat(pluspetrolNorthingRe, text, 1)
	easting := normalize.FindFloat(pluspetrolEastingRe, text, 1)
	if northing != nil && easting != nil {
		lat, lon := geo.FromGaussKrueger2(*easting, *northing)
		inc.LatitudeDD = &lat
		inc.LongitudeDD = &lon
	} else {
		e.log.Warn("incomplete Gauss-Krüger coordinate pair",
			"operator", inc.Operator, "incident_id", inc.IncidentID)
	}

	inc.VolumeSpilledM3 = normalize.FindFloat(pluspetrolVolSpillRe, text, 1)
	inc.VolumeRecoveredM3 = normalize.FindFloat(pluspetrolVolRecovRe, text, 1)
	inc.AffectedAreaM2 = normalize.FindFloat(pluspetrolAreaRe, text, 1)
	inc.WaterPct = normalize.FindFloat(pluspetrolWaterRe, text, 1)

	inc.Magnitude = e.magnitude(text, inc.VolumeSpilledM3)

	return inc
}

// magnitude reads the free-text severity words Pluspetrol embeds in the body
// ("contingencia BAJA", "severidad MEDIA"), falling back to inference from
// the spilled volume when no keyword appears.
func (e *Pluspetrol) magnitude(text string, volM3 *float64) constants.Magnitude {
	up := strings.ToUpper(text)
	switch {
	case strings.Contains(up, "BAJA"):
		return constants.MagnitudeMinor
	case strings.Contains(up, "MEDIA"):
		return constants.MagnitudeIntermediate
	case strings.Contains(up, "ALTA"), strings.Contains(up, "GRAVE"):
		return constants.MagnitudeMajor
	}
	return normalize.InferMagnitude(volM3, nil)
}
