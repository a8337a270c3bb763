package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nerrad567/buildsim/internal/building"
)

// Repository defines the interface for project persistence operations.
type Repository interface {
	SaveProject(ctx context.Context, prj *building.Project) error
	GetProject(ctx context.Context, name string) (*building.Project, error)
	ListProjects(ctx context.Context) ([]string, error)
	DeleteProject(ctx context.Context, name string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed project repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// useConditionsRecord is the JSON column layout for zone profiles.
type useConditionsRecord struct {
	Heating  []float64 `json:"heating"`
	Cooling  []float64 `json:"cooling"`
	Persons  []float64 `json:"persons"`
	Machines []float64 `json:"machines"`
	Lighting []float64 `json:"lighting"`
}

// ahuRecord is the JSON column layout for building AHU profiles.
type ahuRecord struct {
	Temperature []float64 `json:"temperature"`
	MinHumidity []float64 `json:"min_humidity"`
	MaxHumidity []float64 `json:"max_humidity"`
	VFlow       []float64 `json:"v_flow"`
}

// SaveProject stores a project, replacing any stored project of the
// same name. The replace is transactional: readers never observe a
// half-written project.
func (r *SQLiteRepository) SaveProject(ctx context.Context, prj *building.Project) error {
	if err := prj.Validate(); err != nil {
		return fmt.Errorf("validating project: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascades to buildings and zones.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM projects WHERE name = ?`, prj.Name); err != nil {
		return fmt.Errorf("replacing project %s: %w", prj.Name, err)
	}

	projectID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO projects (id, name) VALUES (?, ?)`, projectID, prj.Name); err != nil {
		return fmt.Errorf("inserting project %s: %w", prj.Name, err)
	}

	for i, b := range prj.Buildings {
		if err := insertBuilding(ctx, tx, projectID, b, i); err != nil {
			return fmt.Errorf("inserting building %s: %w", b.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing project %s: %w", prj.Name, err)
	}
	return nil
}

// insertBuilding writes one building and its zones.
func insertBuilding(ctx context.Context, tx *sql.Tx, projectID string, b *building.Building, order int) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	var ahuJSON any
	if b.AHU != nil {
		data, err := json.Marshal(ahuRecord{
			Temperature: b.AHU.ProfileTemperature,
			MinHumidity: b.AHU.ProfileMinRelativeHumidity,
			MaxHumidity: b.AHU.ProfileMaxRelativeHumidity,
			VFlow:       b.AHU.ProfileVFlow,
		})
		if err != nil {
			return fmt.Errorf("encoding AHU profiles: %w", err)
		}
		ahuJSON = string(data)
	}

	const query = `INSERT INTO buildings
		(id, project_id, name, year_of_construction, net_leased_area, ahu, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query,
		b.ID, projectID, b.Name, b.YearOfConstruction, b.NetLeasedArea, ahuJSON, order); err != nil {
		return err
	}

	for i, z := range b.Zones {
		ucJSON, err := json.Marshal(useConditionsRecord{
			Heating:  z.UseConditions.HeatingProfile,
			Cooling:  z.UseConditions.CoolingProfile,
			Persons:  z.UseConditions.PersonsProfile,
			Machines: z.UseConditions.MachinesProfile,
			Lighting: z.UseConditions.LightingProfile,
		})
		if err != nil {
			return fmt.Errorf("encoding use conditions of zone %s: %w", z.Name, err)
		}
		envJSON, err := json.Marshal(encodeEnvelope(z.Envelope))
		if err != nil {
			return fmt.Errorf("encoding envelope of zone %s: %w", z.Name, err)
		}

		const zoneQuery = `INSERT INTO thermal_zones
			(id, building_id, name, area, volume, infiltration_rate, use_conditions, envelope, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, zoneQuery,
			uuid.NewString(), b.ID, z.Name, z.Area, z.Volume, z.InfiltrationRate,
			string(ucJSON), string(envJSON), i); err != nil {
			return fmt.Errorf("inserting zone %s: %w", z.Name, err)
		}
	}
	return nil
}

// GetProject loads a project by name, with buildings and zones in their
// stored order.
func (r *SQLiteRepository) GetProject(ctx context.Context, name string) (*building.Project, error) {
	var projectID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM projects WHERE name = ?`, name).Scan(&projectID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying project %s: %w", name, err)
	}

	prj := &building.Project{Name: name}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, year_of_construction, net_leased_area, ahu
		 FROM buildings WHERE project_id = ? ORDER BY sort_order`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying buildings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		b := &building.Building{}
		var ahuJSON sql.NullString
		if err := rows.Scan(&b.ID, &b.Name, &b.YearOfConstruction, &b.NetLeasedArea, &ahuJSON); err != nil {
			return nil, fmt.Errorf("scanning building: %w", err)
		}
		if ahuJSON.Valid {
			var rec ahuRecord
			if err := json.Unmarshal([]byte(ahuJSON.String), &rec); err != nil {
				return nil, fmt.Errorf("decoding AHU profiles of %s: %w", b.Name, err)
			}
			b.AHU = &building.AirHandlingUnit{
				ProfileTemperature:         rec.Temperature,
				ProfileMinRelativeHumidity: rec.MinHumidity,
				ProfileMaxRelativeHumidity: rec.MaxHumidity,
				ProfileVFlow:               rec.VFlow,
			}
		}
		prj.Buildings = append(prj.Buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buildings: %w", err)
	}

	for _, b := range prj.Buildings {
		if err := r.loadZones(ctx, b); err != nil {
			return nil, fmt.Errorf("loading zones of %s: %w", b.Name, err)
		}
	}
	return prj, nil
}

// loadZones populates the zones of one building in stored order.
func (r *SQLiteRepository) loadZones(ctx context.Context, b *building.Building) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, area, volume, infiltration_rate, use_conditions, envelope
		 FROM thermal_zones WHERE building_id = ? ORDER BY sort_order`, b.ID)
	if err != nil {
		return fmt.Errorf("querying zones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		z := &building.ThermalZone{}
		var ucJSON, envJSON string
		if err := rows.Scan(&z.Name, &z.Area, &z.Volume, &z.InfiltrationRate, &ucJSON, &envJSON); err != nil {
			return fmt.Errorf("scanning zone: %w", err)
		}

		var uc useConditionsRecord
		if err := json.Unmarshal([]byte(ucJSON), &uc); err != nil {
			return fmt.Errorf("decoding use conditions of zone %s: %w", z.Name, err)
		}
		z.UseConditions = building.UseConditions{
			HeatingProfile:  uc.Heating,
			CoolingProfile:  uc.Cooling,
			PersonsProfile:  uc.Persons,
			MachinesProfile: uc.Machines,
			LightingProfile: uc.Lighting,
		}

		var rec envelopeRecord
		if err := json.Unmarshal([]byte(envJSON), &rec); err != nil {
			return fmt.Errorf("decoding envelope of zone %s: %w", z.Name, err)
		}
		env, err := rec.decode()
		if err != nil {
			return fmt.Errorf("zone %s: %w", z.Name, err)
		}
		z.Envelope = env

		b.Zones = append(b.Zones, z)
	}
	return rows.Err()
}

// ListProjects returns the stored project names in alphabetical order.
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM projects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning project name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteProject removes a stored project and everything under it.
func (r *SQLiteRepository) DeleteProject(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, name)
	}
	return nil
}
