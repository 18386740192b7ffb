// Package pipeline orchestrates one ingestion run: read each report document,
// select and apply its operator extractor, enrich coordinates, and insert the
// record unless its incident id is already stored. Documents are processed
// sequentially; a failing document is counted and logged, never fatal. All
// inserts share one transaction committed at the end of the run.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/entity"
	"github.com/enviro-data/incident-etl/internal/extract"
	"github.com/enviro-data/incident-etl/internal/geo"
	"github.com/enviro-data/incident-etl/internal/normalize"
	"github.com/enviro-data/incident-etl/internal/observability"
	"github.com/enviro-data/incident-etl/internal/repository"
	"github.com/enviro-data/incident-etl/internal/textsource"
)

// clock is swapped for a fake in tests.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock replaces the package clock. Intended for tests.
func SetClock(c clockwork.Clock) { clock = c }

// Counters summarizes one ingestion run.
type Counters struct {
	Processed  int `json:"processed"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"` // unrecognized operator format
	Errored    int `json:"errored"` // unreadable text, no incident id, or store failure
}

// Pipeline wires the stages of an ingestion run.
type Pipeline struct {
	source     textsource.Source
	dispatcher *extract.Dispatcher
	repo       repository.IncidentRepository
	metrics    *observability.Metrics
	log        *slog.Logger
}

func New(source textsource.Source, dispatcher *extract.Dispatcher, repo repository.IncidentRepository,
	metrics *observability.Metrics, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:     source,
		dispatcher: dispatcher,
		repo:       repo,
		metrics:    metrics,
		log:        logger,
	}
}

// Ingest processes the given report files in order. It returns the run
// counters; the returned error is non-nil only for run-level failures
// (opening or committing the transaction), never for individual documents.
func (p *Pipeline) Ingest(ctx context.Context, paths []string) (Counters, error) {
	start := clock.Now()
	var c Counters

	// Every log line of a run carries the same id, so interleaved runs
	// against a shared database stay distinguishable.
	log := p.log.With("run_id", uuid.NewString())

	tx, err := p.repo.Begin(ctx)
	if err != nil {
		return c, err
	}

	for _, path := range paths {
		status, operator := p.processOne(ctx, tx, log, path)
		c.Processed++
		switch status {
		case constants.DocStatusPersisted:
			c.Inserted++
			p.metrics.RecordsInserted.Inc()
		case constants.DocStatusDuplicate:
			c.Duplicates++
			p.metrics.Duplicates.Inc()
		case constants.DocStatusUnrecognized:
			c.Skipped++
			p.metrics.Unrecognized.Inc()
		case constants.DocStatusExtractionFailed, constants.DocStatusErrored:
			c.Errored++
			p.metrics.ExtractionErrors.Inc()
		}
		p.metrics.DocumentsProcessed.WithLabelValues(string(operator), string(status)).Inc()
		log.Info("document processed", "file", filepath.Base(path),
			"operator", operator, "status", status)
	}

	if err := tx.Commit(); err != nil {
		return c, err
	}
	p.metrics.RunDuration.Observe(clock.Since(start).Seconds())
	log.Info("run complete", "processed", c.Processed, "inserted", c.Inserted,
		"duplicates", c.Duplicates, "skipped", c.Skipped, "errored", c.Errored)
	return c, nil
}

// processOne runs a single document through the stages and returns its
// terminal status plus the operator it was attributed to (empty when
// unrecognized or unreadable).
func (p *Pipeline) processOne(ctx context.Context, tx repository.IncidentTx, log *slog.Logger, path string) (constants.DocStatus, constants.Operator) {
	docStart := clock.Now()
	defer func() {
		p.metrics.DocumentDuration.Observe(clock.Since(docStart).Seconds())
	}()

	text, err := p.source.TextOf(path)
	if err != nil {
		log.Warn("unreadable document", "file", path, "error", err)
		return constants.DocStatusErrored, ""
	}

	ext, ok := p.dispatcher.Select(text)
	if !ok {
		log.Warn("unrecognized report format", "file", path)
		return constants.DocStatusUnrecognized, ""
	}

	inc := ext.Extract(text)
	if inc.IncidentID == "" {
		log.Warn("no incident identifier extracted", "file", path, "operator", inc.Operator)
		return constants.DocStatusExtractionFailed, inc.Operator
	}

	inc.SourceFile = filepath.Base(path)
	inc.IngestedAt = clock.Now().UTC()
	p.enrichCoordinates(log, &inc)
	p.sanitizeNumerics(log, &inc)

	inserted, err := tx.InsertIfAbsent(ctx, &inc)
	if err != nil {
		log.Error("store insert failed", "file", path,
			"incident_id", inc.IncidentID, "error", err)
		return constants.DocStatusErrored, inc.Operator
	}
	if !inserted {
		log.Info("duplicate incident, keeping first-seen record",
			"file", path, "incident_id", inc.IncidentID)
		return constants.DocStatusDuplicate, inc.Operator
	}
	return constants.DocStatusPersisted, inc.Operator
}

// enrichCoordinates validates the geodetic pair against the operational
// bounding box and derives the UTM 19S grid position. An out-of-range pair is
// nulled so the record still persists; ref_system keeps the provenance of
// what the report claimed.
func (p *Pipeline) enrichCoordinates(log *slog.Logger, inc *entity.Incident) {
	if !inc.HasGeodetic() {
		if inc.LatitudeDD != nil || inc.LongitudeDD != nil {
			// Half a pair is as unusable as none.
			p.metrics.InvalidCoordinates.Inc()
			inc.LatitudeDD, inc.LongitudeDD = nil, nil
		}
		return
	}

	if !normalize.InBoundingBox(inc.LatitudeDD, inc.LongitudeDD) {
		log.Warn("coordinates outside valid range, dropping",
			"incident_id", inc.IncidentID, "operator", inc.Operator,
			"lat", *inc.LatitudeDD, "lon", *inc.LongitudeDD)
		p.metrics.InvalidCoordinates.Inc()
		inc.LatitudeDD, inc.LongitudeDD = nil, nil
		return
	}

	inc.EastingM, inc.NorthingM = geo.ToUTM19S(inc.LatitudeDD, inc.LongitudeDD)
}

// sanitizeNumerics nulls numeric fields a garbled report pushed outside their
// valid range. The store rejects such values, and on PostgreSQL a rejected
// insert aborts the shared run transaction, so they must never reach it.
func (p *Pipeline) sanitizeNumerics(log *slog.Logger, inc *entity.Incident) {
	drop := func(field string, v **float64) {
		log.Warn("numeric field outside valid range, dropping",
			"incident_id", inc.IncidentID, "operator", inc.Operator,
			"field", field, "value", **v)
		p.metrics.InvalidNumerics.Inc()
		*v = nil
	}

	nonNegative := []struct {
		field string
		v     **float64
	}{
		{"volume_spilled_m3", &inc.VolumeSpilledM3},
		{"volume_recovered_m3", &inc.VolumeRecoveredM3},
		{"volume_gas_m3", &inc.VolumeGasM3},
		{"affected_area_m2", &inc.AffectedAreaM2},
	}
	for _, f := range nonNegative {
		if *f.v != nil && **f.v < 0 {
			drop(f.field, f.v)
		}
	}
	if inc.WaterPct != nil && (*inc.WaterPct < 0 || *inc.WaterPct > 100) {
		drop("water_pct", &inc.WaterPct)
	}
}
