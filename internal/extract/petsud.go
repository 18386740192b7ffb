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

// Petróleos Sudamericanos submits a structured "Informe Preliminar Mendoza"
// table. Coordinates are compact DMS (33°30'57,62"); some real reports carry
// typos such as seconds exceeding 60, which must surface as invalid rather
// than as a silently wrong value.
var (
	petsudIncidentRe    = regexp.MustCompile(`N[°º]\s*DE\s*COMUNICADO\s+(\d+)`)
	petsudConcessionRe  = regexp.MustCompile(`Área operativa\s*/\s*concesión\s+([^\n]+)`)
	petsudFieldRe       = regexp.MustCompile(`Yacimiento\s+([^\n]+)`)
	petsudBasinRe       = regexp.MustCompile(`Cuenca\s+([^\n]+)`)
	petsudInstallRe     = regexp.MustCompile(`Instalación asociada\s+([^\n]+)`)
	petsudInstTypeRe    = regexp.MustCompile(`Tipo de instalación\s+([^\n]+)`)
	petsudSubtypeRe     = regexp.MustCompile(`Subtipo de incidente\s+([^\n]+)`)
	petsudCauseRe       = regexp.MustCompile(`Tipo de evento causante\s+([^\n]+)`)
	petsudMagnitudeRe   = regexp.MustCompile(`Magnitud del Incidente\s+([^\n]+)`)
	petsudDescriptionRe = regexp.MustCompile(`Descripción de la rotura y afectación\s*\n([^\n]+)`)
	petsudDateRe        = regexp.MustCompile(`Fecha de ocurrencia\s+(\d{1,2}/\d{1,2}/\d{4})`)
	petsudTimeRe        = regexp.MustCompile(`Hora de ocurrencia\s+(\d{1,2}:\d{2})`)
	petsudLatRe         = regexp.MustCompile(`Coordenadas x\s*\(latitud\s*-\s*S\)\s+([\d°´'"″′’.,\s]+)`)
	petsudLonRe         = regexp.MustCompile(`Coordenadas y\s*\(Longitud\s*-\s*O\)\s+([\d°´'"″′’.,\s]+)`)
	petsudPPMRe         = regexp.MustCompile(`Concentración de hidrocarburo\s*\(ppm\)\s+([^\n]+)`)
	petsudVolSpilledRe  = regexp.MustCompile(`Volumen\s+m3?\s+derramado\s+([\d.,]+)`)
	petsudVolRecoverRe  = regexp.MustCompile(`Volumen\s+m3?\s+recuperado\s+([\d.,]+)`)
	petsudWaterRe       = regexp.MustCompile(`%\s*AGUA\s+DERRAMADO\s+([\d.,]+)`)
	petsudAreaRe        = regexp.MustCompile(`Área\s+m2\s+([\d.,]+)`)
	petsudMeasuresRe    = regexp.MustCompile(`Medidas adoptadas\s+([^\n]+)`)
)

// petsudResources are the affected-resource checkbox labels; a marked box
// shows as the label followed by a lone "x" in the extracted text.
var petsudResources = []string{"Suelo", "Cauce aluvional", "Agua superficial", "Vegetacion", "Otros"}

var petsudResourceRes = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(petsudResources))
	for _, r := range petsudResources {
		m[r] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r) + `\s+x\b`)
	}
	return m
}()

type PetSud struct {
	log *slog.Logger
}

func NewPetSud(logger *slog.Logger) *PetSud {
	return &PetSud{log: logger}
}

func (e *PetSud) Operator() constants.Operator { return constants.OperatorPetSud }

func (e *PetSud) Extract(text string) entity.Incident {
	inc := entity.Incident{
		Operator:  constants.OperatorPetSud,
		RefSystem: constants.RefSystemWGS84DMS,
	}

	if num := normalize.FindString(petsudIncidentRe, text, 1); num != "" {
		inc.IncidentID = "PETSUD-" + num
	}

	inc.ConcessionArea = normalize.FindString(petsudConcessionRe, text, 1)
	inc.Field = normalize.FindString(petsudFieldRe, text, 1)
	inc.Basin = normalize.FindString(petsudBasinRe, text, 1)

	inc.Installation = normalize.FindString(petsudInstallRe, text, 1)
	inc.InstallationType = normalize.FindString(petsudInstTypeRe, text, 1)
	inc.IncidentSubtype = normalize.FindString(petsudSubtypeRe, text, 1)
	inc.Cause = normalize.FindString(petsudCauseRe, text, 1)
	inc.Description = normalize.FindString(petsudDescriptionRe, text, 1)
	inc.Measures = normalize.FindString(petsudMeasuresRe, text, 1)

	if raw := normalize.FindString(petsudDateRe, text, 1); raw != "" {
		inc.OccurrenceDate = normalize.Date(raw)
		if inc.OccurrenceDate == "" {
			e.log.Warn("unrecognized date format", "operator", inc.Operator, "raw", raw)
		}
	}
	inc.OccurrenceTime = normalize.FindString(petsudTimeRe, text, 1)

	inc.LatitudeDD = e.parseDMS(normalize.FindString(petsudLatRe, text, 1), "latitude", inc.IncidentID)
	inc.LongitudeDD = e.parseDMS(normalize.FindString(petsudLonRe, text, 1), "longitude", inc.IncidentID)
	if inc.HasGeodetic() && !normalize.InBoundingBox(inc.LatitudeDD, inc.LongitudeDD) {
		e.log.Warn("coordinates outside operational bounding box, check source report for typos",
			"operator", inc.Operator, "incident_id", inc.IncidentID,
			"lat", *inc.LatitudeDD, "lon", *inc.LongitudeDD)
	}

	inc.HydrocarbonPPM = normalize.FindString(petsudPPMRe, text, 1)
	inc.VolumeSpilledM3 = normalize.FindFloat(petsudVolSpilledRe, text, 1)
	inc.VolumeRecoveredM3 = normalize.FindFloat(petsudVolRecoverRe, text, 1)
	inc.WaterPct = normalize.FindFloat(petsudWaterRe, text, 1)
	inc.AffectedAreaM2 = normalize.FindFloat(petsudAreaRe, text, 1)

	var marked []string
	for _, r := range petsudResources {
		if petsudResourceRes[r].MatchString(text) {
			marked = append(marked, r)
		}
	}
	inc.AffectedResources = strings.Join(marked, ", ")

	if raw := normalize.FindString(petsudMagnitudeRe, text, 1); raw != "" {
		inc.Magnitude = constants.MapMagnitude(raw)
	} else {
		inc.Magnitude = normalize.InferMagnitude(inc.VolumeSpilledM3, nil)
	}

	return inc
}

// parseDMS parses a compact DMS coordinate, logging when the value is absent
// or unparseable. The result is already negative-forced by the geo package.
func (e *PetSud) parseDMS(raw, which, incidentID string) *float64 {
	if raw == "" {
		e.log.Warn("coordinate not found in report", "operator", constants.OperatorPetSud,
			"incident_id", incidentID, "coordinate", which)
		return nil
	}
	dd := geo.ParseDMS(raw)
	if dd == nil {
		e.log.Warn("unparseable DMS coordinate", "operator", constants.OperatorPetSud,
			"incident_id", incidentID, "coordinate", which, "raw", strings.TrimSpace(raw))
	}
	return dd
}
