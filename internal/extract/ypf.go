package extract

import (
	"log/slog"
	"math"
	"regexp"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/entity"
	"github.com/enviro-data/incident-etl/internal/normalize"
)

// YPF reports are the "Informe Preliminar Mendoza" form. Coordinates come in
// three notations on consecutive lines; the direct decimal-degree line
// ("Grados y decimales") is preferred because it needs no conversion.
var (
	ypfIncidentRe     = regexp.MustCompile(`Incidente N[°º]\s*(\d+)`)
	ypfConcessionRe   = regexp.MustCompile(`Área concesionada:\s*([^\n]+)`)
	ypfFieldRe        = regexp.MustCompile(`Yacimiento:\s*([^\n]+)`)
	ypfBasinRe        = regexp.MustCompile(`Cuenca:\s*([^\n]+)`)
	ypfOpAreaRe       = regexp.MustCompile(`Área operativa:\s*([^\n]+)`)
	ypfDateRe         = regexp.MustCompile(`Fecha de ocurrencia:\s*(\d{1,2}/\d{1,2}/\d{4})`)
	ypfTimeRe         = regexp.MustCompile(`Hora de ocurrencia:\s*(\d{1,2}:\d{2})`)
	ypfMagnitudeRe    = regexp.MustCompile(`Magnitud del Incidente:\s*(\w+)`)
	ypfInstallationRe = regexp.MustCompile(`Nombre de la instalación:\s*([^\n]+)`)
	ypfInstTypeRe     = regexp.MustCompile(`Tipo de instalación:\s*([^\n]+)`)
	ypfSubtypeRe      = regexp.MustCompile(`Subtipo de incidente:\s*([^\n]+)`)
	ypfCauseRe        = regexp.MustCompile(`Tipo de evento causante:\s*([^\n]+)`)
	ypfDescriptionRe  = regexp.MustCompile(`Descripción:\s*([^\n]+)`)
	ypfLatRe          = regexp.MustCompile(`Latitud \(S\):\s*(-?\d+\.\d+)`)
	ypfLonRe          = regexp.MustCompile(`Longitud \(W\):\s*(-?\d+\.\d+)`)
	ypfPPMRe          = regexp.MustCompile(`Concentración de hidrocarburo \(ppm\):\s*([^\n]+)`)
	ypfVolSpilledRe   = regexp.MustCompile(`Volumen m3 derramado:\s*([\d.,]+)`)
	ypfVolRecoverRe   = regexp.MustCompile(`Volumen m3 recuperado:\s*([\d.,]+)`)
	ypfWaterRe        = regexp.MustCompile(`% Agua contenido:\s*([\d.,]+)`)
	ypfAreaRe         = regexp.MustCompile(`Área m2:\s*([\d.,]+)`)
	ypfResourcesRe    = regexp.MustCompile(`Recursos afectados:\s*([^\n]+)`)
)

type YPF struct {
	log *slog.Logger
}

func NewYPF(logger *slog.Logger) *YPF {
	return &YPF{log: logger}
}

func (e *YPF) Operator() constants.Operator { return constants.OperatorYPF }

func (e *YPF) Extract(text string) entity.Incident {
	inc := entity.Incident{
		Operator:  constants.OperatorYPF,
		RefSystem: constants.RefSystemWGS84DD,
	}

	inc.IncidentID = normalize.FindString(ypfIncidentRe, text, 1)

	inc.ConcessionArea = normalize.FindString(ypfConcessionRe, text, 1)
	if inc.ConcessionArea == "" {
		// YPF only submits for this concession; the form occasionally omits it.
		inc.ConcessionArea = "DESFILADERO BAYO"
	}
	inc.Field = normalize.FindString(ypfFieldRe, text, 1)
	inc.Basin = normalize.FindString(ypfBasinRe, text, 1)
	inc.OperationalArea = normalize.FindString(ypfOpAreaRe, text, 1)

	if raw := normalize.FindString(ypfDateRe, text, 1); raw != "" {
		inc.OccurrenceDate = normalize.Date(raw)
		if inc.OccurrenceDate == "" {
			e.log.Warn("unrecognized date format", "operator", inc.Operator, "raw", raw)
		}
	}
	inc.OccurrenceTime = normalize.FindString(ypfTimeRe, text, 1)

	inc.Installation = normalize.FindString(ypfInstallationRe, text, 1)
	inc.InstallationType = normalize.FindString(ypfInstTypeRe, text, 1)
	inc.IncidentSubtype = normalize.FindString(ypfSubtypeRe, text, 1)
	inc.Cause = normalize.FindString(ypfCauseRe, text, 1)
	inc.Description = normalize.FindString(ypfDescriptionRe, text, 1)

	// YPF labels hemispheres in the headers (S/W) and reports unsigned values.
	inc.LatitudeDD = negated(normalize.FindFloat(ypfLatRe, text, 1))
	inc.LongitudeDD = negated(normalize.FindFloat(ypfLonRe, text, 1))

	inc.HydrocarbonPPM = normalize.FindString(ypfPPMRe, text, 1)
	inc.VolumeSpilledM3 = normalize.FindFloat(ypfVolSpilledRe, text, 1)
	inc.VolumeRecoveredM3 = normalize.FindFloat(ypfVolRecoverRe, text, 1)
	inc.WaterPct = normalize.FindFloat(ypfWaterRe, text, 1)
	inc.AffectedAreaM2 = normalize.FindFloat(ypfAreaRe, text, 1)
	inc.AffectedResources = normalize.FindString(ypfResourcesRe, text, 1)

	if raw := normalize.FindString(ypfMagnitudeRe, text, 1); raw != "" {
		inc.Magnitude = constants.MapMagnitude(raw)
	} else {
		inc.Magnitude = normalize.InferMagnitude(inc.VolumeSpilledM3, nil)
	}

	return inc
}

// negated forces the southern/western sign on an unsigned reported value.
func negated(v *float64) *float64 {
	if v == nil {
		return nil
	}
	n := -math.Abs(*v)
	return &n
}
