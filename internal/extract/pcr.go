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

// PCR (Petroquímica Comodoro Rivadavia) comunicados identify incidents with a
// full MDZ-yy-nnn code and report DMS coordinates with acute-accent minute
// marks. The form's severity checklist prints every option (BAJO/MEDIO/GRAVE)
// whether ticked or not, so magnitude is always inferred from volume here.
var (
	pcrIncidentRe    = regexp.MustCompile(`MDZ-\d+-\d+`)
	pcrConcessionRe  = regexp.MustCompile(`Concesión:\s*([^\n]+)`)
	pcrDateRe        = regexp.MustCompile(`Fecha:\s*(\d{1,2}-\d{1,2}-\d{4})`)
	pcrEstTimeRe     = regexp.MustCompile(`Hora Estimada:\s*([\d:]+)`)
	pcrLatRe         = regexp.MustCompile(`Lat\.\s*S=\s*([\d°º´'"″′’.,\s]+)`)
	pcrLonRe         = regexp.MustCompile(`Long\.\s*O=\s*([\d°º´'"″′’.,\s]+)`)
	pcrVolSpillRe    = regexp.MustCompile(`neto de hidrocarburo:\s*([\d.,]+)`)
	pcrVolRecovRe    = regexp.MustCompile(`recuperado neto de hidrocarburo:\s*([\d.,]+)`)
	pcrWaterRe       = regexp.MustCompile(`(\d+)\s*%\s*de agua`)
	pcrAreaRe        = regexp.MustCompile(`se afectan unos\s+([\d.,]+)\s*m2`)
	pcrLocationRe    = regexp.MustCompile(`Ubicación específica:\s*([^\n]+)`)
	pcrDescriptionRe = regexp.MustCompile(`Descripción del accidente y su impacto:\s*\n?([^\n]+)`)
	pcrMeasuresRe    = regexp.MustCompile(`Medidas adoptadas:\s*([^\n]+)`)
	pcrResponsibleRe = regexp.MustCompile(`Responsable del comunicado:\s*([^\n]+)`)
)

type PCR struct {
	log *slog.Logger
}

func NewPCR(logger *slog.Logger) *PCR {
	return &PCR{log: logger}
}

func (e *PCR) Operator() constants.Operator { return constants.OperatorPCR }

func (e *PCR) Extract(text string) entity.Incident {
	inc := entity.Incident{
		Operator:  constants.OperatorPCR,
		RefSystem: constants.RefSystemWGS84DMS,
	}

	// The full code is the identifier, no capture group needed.
	inc.IncidentID = normalize.FindString(pcrIncidentRe, text, 0)

	inc.ConcessionArea = normalize.FindString(pcrConcessionRe, text, 1)
	if inc.ConcessionArea == "" {
		inc.ConcessionArea = "El Sosneado"
	}
	inc.Location = normalize.FindString(pcrLocationRe, text, 1)
	inc.Description = normalize.FindString(pcrDescriptionRe, text, 1)
	inc.Measures = normalize.FindString(pcrMeasuresRe, text, 1)
	inc.Responsible = normalize.FindString(pcrResponsibleRe, text, 1)

	if raw := normalize.FindString(pcrDateRe, text, 1); raw != "" {
		inc.OccurrenceDate = normalize.Date(raw)
		if inc.OccurrenceDate == "" {
			e.log.Warn("unrecognized date format", "operator", inc.Operator, "raw", raw)
		}
	}
	inc.EstimatedTime = normalize.FindString(pcrEstTimeRe, text, 1)

	inc.LatitudeDD = e.parseDMS(normalize.FindString(pcrLatRe, text, 1), "latitude", inc.IncidentID)
	inc.LongitudeDD = e.parseDMS(normalize.FindString(pcrLonRe, text, 1), "longitude", inc.IncidentID)

	inc.VolumeSpilledM3 = normalize.FindFloat(pcrVolSpillRe, text, 1)
	inc.VolumeRecoveredM3 = normalize.FindFloat(pcrVolRecovRe, text, 1)
	inc.WaterPct = normalize.FindFloat(pcrWaterRe, text, 1)
	inc.AffectedAreaM2 = normalize.FindFloat(pcrAreaRe, text, 1)

	inc.Magnitude = normalize.InferMagnitude(inc.VolumeSpilledM3, nil)

	return inc
}

func (e *PCR) parseDMS(raw, which, incidentID string) *float64 {
	if raw == "" {
		e.log.Warn("coordinate not found in report", "operator", constants.OperatorPCR,
			"incident_id", incidentID, "coordinate", which)
		return nil
	}
	dd := geo.ParseDMS(raw)
	if dd == nil {
		e.log.Warn("unparseable DMS coordinate", "operator", constants.OperatorPCR,
			"incident_id", incidentID, "coordinate", which, "raw", strings.TrimSpace(raw))
	}
	return dd
}
