package repository

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/common"
	"github.com/enviro-data/incident-etl/internal/entity"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := common.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "incidentes.db"),
		DialTimeout: 3 * time.Second,
	}
	db, err := Open(context.Background(), cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func fptr(v float64) *float64 { return &v }

func sampleIncident() *entity.Incident {
	return &entity.Incident{
		IncidentID:      "PETSUD-562",
		Operator:        constants.OperatorPetSud,
		ConcessionArea:  "La Ventana",
		Field:           "Punta de las Bardas",
		Basin:           "Cuyana",
		Magnitude:       constants.MagnitudeMinor,
		OccurrenceDate:  "12-02-2026",
		OccurrenceTime:  "15:00",
		VolumeSpilledM3: fptr(7),
		WaterPct:        fptr(100),
		AffectedAreaM2:  fptr(200),
		HydrocarbonPPM:  "Menor a 50ppm",
		LatitudeDD:      fptr(-33.516006),
		LongitudeDD:     fptr(-68.63745),
		EastingM:        fptr(441234.56),
		NorthingM:       fptr(6291234.12),
		RefSystem:       constants.RefSystemWGS84DMS,
		SourceFile:      "562.pdf",
		IngestedAt:      time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC),
	}
}

func TestInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(openTestDB(t))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	inserted, err := tx.InsertIfAbsent(ctx, sampleIncident())
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same id again in the same run: duplicate, no error, no overwrite.
	dup := sampleIncident()
	dup.Description = "registro repetido"
	inserted, err = tx.InsertIfAbsent(ctx, dup)
	require.NoError(t, err)
	assert.False(t, inserted)

	require.NoError(t, tx.Commit())

	got, err := repo.GetByID(ctx, "PETSUD-562")
	require.NoError(t, err)
	assert.Empty(t, got.Description, "first-seen row must win")
	assert.Equal(t, constants.OperatorPetSud, got.Operator)
	assert.Equal(t, constants.MagnitudeMinor, got.Magnitude)
	require.NotNil(t, got.VolumeSpilledM3)
	assert.InDelta(t, 7.0, *got.VolumeSpilledM3, 1e-9)
	assert.Nil(t, got.VolumeRecoveredM3)
	require.NotNil(t, got.LatitudeDD)
	assert.InDelta(t, -33.516006, *got.LatitudeDD, 1e-9)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestInsertDuplicateAcrossRuns(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(openTestDB(t))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	inserted, err := tx.InsertIfAbsent(ctx, sampleIncident())
	require.NoError(t, err)
	require.True(t, inserted)
	require.NoError(t, tx.Commit())

	tx, err = repo.Begin(ctx)
	require.NoError(t, err)
	inserted, err = tx.InsertIfAbsent(ctx, sampleIncident())
	require.NoError(t, err)
	assert.False(t, inserted)
	require.NoError(t, tx.Commit())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRollbackDiscardsRun(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(openTestDB(t))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.InsertIfAbsent(ctx, sampleIncident())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = repo.GetByID(ctx, "PETSUD-562")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCheckConstraintRejectsOutOfRangeCoordinates(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(openTestDB(t))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	inc := sampleIncident()
	inc.LatitudeDD = fptr(34.9643) // hemisphere typo, outside the valid range
	_, err = tx.InsertIfAbsent(ctx, inc)
	assert.Error(t, err)
}

func TestCheckConstraintRejectsUnknownMagnitude(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(openTestDB(t))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	inc := sampleIncident()
	inc.Magnitude = "Catastrófico"
	_, err = tx.InsertIfAbsent(ctx, inc)
	assert.Error(t, err)
}

func TestListOrdersByIngestion(t *testing.T) {
	ctx := context.Background()
	repo := NewIncidentRepository(openTestDB(t))

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	first := sampleIncident()
	second := sampleIncident()
	second.IncidentID = "MDZ-21-2025"
	second.Operator = constants.OperatorPCR
	second.IngestedAt = first.IngestedAt.Add(time.Minute)

	_, err = tx.InsertIfAbsent(ctx, first)
	require.NoError(t, err)
	_, err = tx.InsertIfAbsent(ctx, second)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "PETSUD-562", got[0].IncidentID)
	assert.Equal(t, "MDZ-21-2025", got[1].IncidentID)
}
