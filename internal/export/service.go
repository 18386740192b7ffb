package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/enviro-data/incident-etl/internal/entity"
	"github.com/enviro-data/incident-etl/internal/repository"
)

// Service is a tiny façade over the incident repository that produces XLSX
// bytes for exports.
type Service struct {
	repo   repository.IncidentRepository
	logger *slog.Logger
}

func NewService(repo repository.IncidentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// incidentHeaders is the column layout of the "Incidentes" sheet, mirroring
// the order the authority's analysts expect.
var incidentHeaders = []string{
	"ID Incidente",
	"Operador",
	"Área Concesionada",
	"Yacimiento",
	"Cuenca",
	"Instalación",
	"Tipo de Instalación",
	"Subtipo de Incidente",
	"Causa",
	"Magnitud",
	"Fecha de Ocurrencia",
	"Hora",
	"Vol. Derramado (m3)",
	"Vol. Recuperado (m3)",
	"% Agua",
	"Área Afectada (m2)",
	"HC (ppm)",
	"Latitud",
	"Longitud",
	"Este UTM19S (m)",
	"Norte UTM19S (m)",
	"Sistema de Referencia",
	"Recursos Afectados",
	"Descripción",
	"Archivo Fuente",
}

// ExportIncidentsXLSX returns an XLSX workbook (as bytes) with every stored
// incident on a single "Incidentes" sheet.
func (s *Service) ExportIncidentsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	incidents, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query incidents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Incidentes"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range incidentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, inc := range incidents {
		writeIncidentRow(f, sheet, row+2, &inc)
	}

	_ = f.SetColWidth(sheet, "A", "B", 16)
	_ = f.SetColWidth(sheet, "C", "I", 22)
	_ = f.SetColWidth(sheet, "J", "L", 14)
	_ = f.SetColWidth(sheet, "M", "U", 12)
	_ = f.SetColWidth(sheet, "V", "W", 20)
	_ = f.SetColWidth(sheet, "X", "X", 60)
	_ = f.SetColWidth(sheet, "Y", "Y", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(incidents),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeIncidentRow(f *excelize.File, sheet string, row int, inc *entity.Incident) {
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	writeFloat := func(col int, v *float64) {
		if v != nil {
			write(col, *v)
		}
	}

	write(1, inc.IncidentID)
	write(2, string(inc.Operator))
	write(3, inc.ConcessionArea)
	write(4, inc.Field)
	write(5, inc.Basin)
	write(6, inc.Installation)
	write(7, inc.InstallationType)
	write(8, inc.IncidentSubtype)
	write(9, inc.Cause)
	write(10, string(inc.Magnitude))
	write(11, inc.OccurrenceDate)
	write(12, inc.OccurrenceTime)
	writeFloat(13, inc.VolumeSpilledM3)
	writeFloat(14, inc.VolumeRecoveredM3)
	writeFloat(15, inc.WaterPct)
	writeFloat(16, inc.AffectedAreaM2)
	write(17, inc.HydrocarbonPPM)
	writeFloat(18, inc.LatitudeDD)
	writeFloat(19, inc.LongitudeDD)
	writeFloat(20, inc.EastingM)
	writeFloat(21, inc.NorthingM)
	write(22, string(inc.RefSystem))
	write(23, inc.AffectedResources)
	write(24, truncate(inc.Description, 140))
	write(25, inc.SourceFile)
}

// truncate caps s at n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
