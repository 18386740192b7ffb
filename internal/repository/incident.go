package repository

import (
	"context"
	"database/sql"

	"github.com/enviro-data/incident-etl/constants"
	"github.com/enviro-data/incident-etl/internal/common"
	"github.com/enviro-data/incident-etl/internal/entity"
)

// IncidentRepository defines the persistence operations for incident records.
type IncidentRepository interface {
	// Begin opens the transaction for one ingestion run. All inserts of the
	// run go through the returned handle and become visible only on Commit.
	Begin(ctx context.Context) (IncidentTx, error)
	GetByID(ctx context.Context, incidentID string) (*entity.Incident, error)
	List(ctx context.Context) ([]entity.Incident, error)
	Count(ctx context.Context) (int64, error)
}

// IncidentTx is the write scope of a single ingestion run.
type IncidentTx interface {
	// InsertIfAbsent writes the record unless a row with the same incident_id
	// already exists. The existing row is never touched. Returns true when a
	// row was inserted, false when it was a duplicate.
	InsertIfAbsent(ctx context.Context, inc *entity.Incident) (bool, error)
	Commit() error
	Rollback() error
}

// incidentColumns is the full column list in insert and select order.
const incidentColumns = `incident_id, operator,
	concession_area, field, basin, operational_area,
	installation, installation_type, incident_subtype, cause,
	description, measures, responsible, location, code, affected_resources,
	magnitude, occurrence_date, occurrence_time, estimated_time,
	volume_spilled_m3, volume_recovered_m3, volume_gas_m3, water_pct,
	affected_area_m2, hydrocarbon_ppm,
	latitude_dd, longitude_dd, easting_m, northing_m, ref_system,
	source_file, ingested_at`

const insertIncidentSQL = `
	INSERT INTO incidents (` + incidentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
	        $31, $32, $33)
	ON CONFLICT (incident_id) DO NOTHING`

type incidentRepository struct {
	db *DB
}

// NewIncidentRepository creates an incident repository over an open database.
func NewIncidentRepository(db *DB) IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Begin(ctx context.Context) (IncidentTx, error) {
	tx, err := r.db.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.WrapError(err, "beginning run transaction")
	}
	return &incidentTx{tx: tx}, nil
}

func (r *incidentRepository) GetByID(ctx context.Context, incidentID string) (*entity.Incident, error) {
	row := r.db.db.QueryRowContext(ctx,
		`SELECT `+incidentColumns+` FROM incidents WHERE incident_id = $1`, incidentID)

	inc, err := scanIncident(row.Scan)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(err, "scanning incident")
	}
	return inc, nil
}

func (r *incidentRepository) List(ctx context.Context) ([]entity.Incident, error) {
	rows, err := r.db.db.QueryContext(ctx,
		`SELECT `+incidentColumns+` FROM incidents ORDER BY ingested_at, incident_id`)
	if err != nil {
		return nil, common.WrapError(err, "querying incidents")
	}
	defer rows.Close()

	var incidents []entity.Incident
	for rows.Next() {
		inc, err := scanIncident(rows.Scan)
		if err != nil {
			return nil, common.WrapError(err, "scanning incident")
		}
		incidents = append(incidents, *inc)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "iterating incidents")
	}
	return incidents, nil
}

func (r *incidentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM incidents").Scan(&count)
	if err != nil {
		return 0, common.WrapError(err, "counting incidents")
	}
	return count, nil
}

type incidentTx struct {
	tx *sql.Tx
}

func (t *incidentTx) InsertIfAbsent(ctx context.Context, inc *entity.Incident) (bool, error) {
	res, err := t.tx.ExecContext(ctx, insertIncidentSQL,
		inc.IncidentID, string(inc.Operator),
		inc.ConcessionArea, inc.Field, inc.Basin, inc.OperationalArea,
		inc.Installation, inc.InstallationType, inc.IncidentSubtype, inc.Cause,
		inc.Description, inc.Measures, inc.Responsible, inc.Location, inc.Code, inc.AffectedResources,
		string(inc.Magnitude), inc.OccurrenceDate, inc.OccurrenceTime, inc.EstimatedTime,
		inc.VolumeSpilledM3, inc.VolumeRecoveredM3, inc.VolumeGasM3, inc.WaterPct,
		inc.AffectedAreaM2, inc.HydrocarbonPPM,
		inc.LatitudeDD, inc.LongitudeDD, inc.EastingM, inc.NorthingM, string(inc.RefSystem),
		inc.SourceFile, inc.IngestedAt,
	)
	if err != nil {
		return false, common.WrapError(err, "inserting incident")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, common.WrapError(err, "reading insert result")
	}
	return affected > 0, nil
}

func (t *incidentTx) Commit() error {
	return t.tx.Commit()
}

func (t *incidentTx) Rollback() error {
	return t.tx.Rollback()
}

// scanIncident reads one row in incidentColumns order. Nullable numeric
// columns scan straight into the entity's pointer fields.
func scanIncident(scan func(dest ...any) error) (*entity.Incident, error) {
	var (
		inc       entity.Incident
		operator  string
		magnitude string
		refSystem string
	)
	err := scan(
		&inc.IncidentID, &operator,
		&inc.ConcessionArea, &inc.Field, &inc.Basin, &inc.OperationalArea,
		&inc.Installation, &inc.InstallationType, &inc.IncidentSubtype, &inc.Cause,
		&inc.Description, &inc.Measures, &inc.Responsible, &inc.Location, &inc.Code, &inc.AffectedResources,
		&magnitude, &inc.OccurrenceDate, &inc.OccurrenceTime, &inc.EstimatedTime,
		&inc.VolumeSpilledM3, &inc.VolumeRecoveredM3, &inc.VolumeGasM3, &inc.WaterPct,
		&inc.AffectedAreaM2, &inc.HydrocarbonPPM,
		&inc.LatitudeDD, &inc.LongitudeDD, &inc.EastingM, &inc.NorthingM, &refSystem,
		&inc.SourceFile, &inc.IngestedAt,
	)
	if err != nil {
		return nil, err
	}
	inc.Operator = constants.Operator(operator)
	inc.Magnitude = constants.Magnitude(magnitude)
	inc.RefSystem = constants.RefSystem(refSystem)
	return &inc, nil
}
