package extract

import (
	"log/slog"
	"regexp"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/entity"
	"github.com/enviro-data/incident-etl/internal/normalize"
)

// Aconcagua Energía reports are narrative rather than tabular. The well code
// CH-n doubles as the incident identifier; a report with no well code is a
// pipeline incident and gets the "S/N" sentinel instead of being dropped.
var (
	aconcaguaWellRe        = regexp.MustCompile(`CH-(\d+)`)
	aconcaguaDateRe        = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`)
	aconcaguaTimeRe        = regexp.MustCompile(`Hora de Ocurrencia\s+(\d{1,2}:\d{2})`)
	aconcaguaVolSpillRe    = regexp.MustCompile(`Volumen de líquido derramado\s+([\d.,]+)`)
	aconcaguaVolRecovRe    = regexp.MustCompile(`Volumen de fluido recuperado\s+([\d.,]+)`)
	aconcaguaVolGasRe      = regexp.MustCompile(`Volumen de gas\s+([\d.,]+)`)
	aconcaguaWaterRe       = regexp.MustCompile(`%\s*de\s*Agua\s+([\d.,]+)`)
	aconcaguaAreaRe        = regexp.MustCompile(`Superficie aprox\.?\s*afectada\s+([\d.,]+)`)
	aconcaguaPPMRe         = regexp.MustCompile(`PPM\s+([\d.,]+)`)
	aconcaguaLatRe         = regexp.MustCompile(`Latitud Decimal\s+(-?\d+\.\d+)`)
	aconcaguaLonRe         = regexp.MustCompile(`Longitud Decimal\s+(-?\d+\.\d+)`)
	aconcaguaInstTypeRe    = regexp.MustCompile(`Tipo de instalación involucrada\s+([^\n]+)`)
	aconcaguaResponsRe     = regexp.MustCompile(`Res?ponsable de la Instalación\s+([^\n]+)`)
	aconcaguaDescriptionRe = regexp.MustCompile(`Detalle del incidente\s+([^\n]+)`)
)

type Aconcagua struct {
	log *slog.Logger
}

func NewAconcagua(logger *slog.Logger) *Aconcagua {
	return &Aconcagua{log: logger}
}

func (e *Aconcagua) Operator() constants.Operator { return constants.OperatorAconcagua }

func (e *Aconcagua) Extract(text string) entity.Incident {
	inc := entity.Incident{
		Operator:       constants.OperatorAconcagua,
		ConcessionArea: "Chañares Herrados",
		RefSystem:      constants.RefSystemWGS84DD,
	}

	if well := normalize.FindString(aconcaguaWellRe, text, 0); well != "" {
		inc.IncidentID = well
		inc.Installation = "Pozo " + well
	} else {
		inc.IncidentID = "S/N"
		inc.Installation = "Cañería"
	}

	if raw := normalize.FindString(aconcaguaDateRe, text, 1); raw != "" {
		inc.OccurrenceDate = normalize.Date(raw)
		if inc.OccurrenceDate == "" {
			e.log.Warn("unrecognized date format", "operator", inc.Operator, "raw", raw)
		}
	}
	inc.OccurrenceTime = normalize.FindString(aconcaguaTimeRe, text, 1)

	inc.InstallationType = normalize.FindString(aconcaguaInstTypeRe, text, 1)
	inc.Responsible = normalize.FindString(aconcaguaResponsRe, text, 1)
	inc.Description = normalize.FindString(aconcaguaDescriptionRe, text, 1)

	// Decimal coordinates are reported unsigned; the region is S/W.
	inc.LatitudeDD = negated(normalize.FindFloat(aconcaguaLatRe, text, 1))
	inc.LongitudeDD = negated(normalize.FindFloat(aconcaguaLonRe, text, 1))

	inc.VolumeSpilledM3 = normalize.FindFloat(aconcaguaVolSpillRe, text, 1)
	inc.VolumeRecoveredM3 = normalize.FindFloat(aconcaguaVolRecovRe, text, 1)
	inc.VolumeGasM3 = normalize.FindFloat(aconcaguaVolGasRe, text, 1)
	inc.WaterPct = normalize.FindFloat(aconcaguaWaterRe, text, 1)
	inc.AffectedAreaM2 = normalize.FindFloat(aconcaguaAreaRe, text, 1)
	if ppm := normalize.FindString(aconcaguaPPMRe, text, 1); ppm != "" {
		inc.HydrocarbonPPM = ppm
	}

	inc.Magnitude = normalize.InferMagnitude(inc.VolumeSpilledM3, normalize.ParseFloat(inc.HydrocarbonPPM))

	return inc
}
