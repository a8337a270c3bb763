package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/nerrad567/buildsim/internal/building"
	"github.com/nerrad567/buildsim/internal/export/boundary"
	"github.com/nerrad567/buildsim/internal/export/modelica"
	"github.com/nerrad567/buildsim/internal/infrastructure/config"
	"github.com/nerrad567/buildsim/internal/infrastructure/database"
	"github.com/nerrad567/buildsim/internal/infrastructure/influxdb"
	"github.com/nerrad567/buildsim/internal/infrastructure/logging"
	"github.com/nerrad567/buildsim/internal/project"
)

// openStore opens the project store and applies pending migrations.
func openStore(ctx context.Context, cfg *config.Config, log *logging.Logger) (*database.DB, error) {
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening project store: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	log.Debug("project store ready", "path", cfg.Database.Path)
	return db, nil
}

// runImport loads a YAML project file into the store, optionally
// replacing gain profiles with measured data from InfluxDB.
func runImport(ctx context.Context, cfg *config.Config, log *logging.Logger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	measuredYear := fs.Int("measured-year", 0,
		"replace gain profiles with measured hourly data from this calendar year")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("import: expected exactly one project file argument")
	}
	path := fs.Arg(0)

	prj, err := project.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading project file: %w", err)
	}
	log.Info("project file loaded", "project", prj.Name, "buildings", len(prj.Buildings))

	if *measuredYear != 0 {
		if err := applyMeasuredProfiles(ctx, cfg, log, prj, *measuredYear); err != nil {
			return err
		}
	}

	db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := project.NewSQLiteRepository(db.DB)
	if err := repo.SaveProject(ctx, prj); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	log.Info("project imported", "project", prj.Name)
	return nil
}

// applyMeasuredProfiles replaces the persons/machines/lighting profiles
// of every zone with measured hourly data.
func applyMeasuredProfiles(ctx context.Context, cfg *config.Config, log *logging.Logger, prj *building.Project, year int) error {
	client, err := influxdb.Connect(cfg.InfluxDB)
	if err != nil {
		return fmt.Errorf("connecting to profile source: %w", err)
	}
	defer client.Close()

	for _, b := range prj.Buildings {
		for _, zone := range b.Zones {
			for _, p := range []struct {
				field string
				dst   *[]float64
			}{
				{"persons", &zone.UseConditions.PersonsProfile},
				{"machines", &zone.UseConditions.MachinesProfile},
				{"lighting", &zone.UseConditions.LightingProfile},
			} {
				values, err := client.HourlyProfile(ctx, influxdb.ProfileQuery{
					Measurement: "internal_gains",
					Field:       p.field,
					Zone:        zone.Name,
					Year:        year,
				})
				if err != nil {
					return fmt.Errorf("measured %s profile for zone %s: %w", p.field, zone.Name, err)
				}
				*p.dst = values
			}
			log.Debug("measured profiles applied", "building", b.Name, "zone", zone.Name, "year", year)
		}
	}
	return nil
}

// runExport renders a stored project into simulation artifacts.
func runExport(ctx context.Context, cfg *config.Config, log *logging.Logger, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	onlyBuilding := fs.String("building", "", "export only this building")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("export: expected exactly one project name argument")
	}
	name := fs.Arg(0)

	db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := project.NewSQLiteRepository(db.DB)
	prj, err := repo.GetProject(ctx, name)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	exporter, err := modelica.NewExporter(modelica.Config{
		NumberOfElements: cfg.Export.NumberOfElements,
		MergeWindows:     cfg.Export.MergeWindows,
	})
	if err != nil {
		return err
	}

	modelFiles, err := exporter.ExportProject(prj, *onlyBuilding, cfg.Export.OutputDir)
	if err != nil {
		return fmt.Errorf("exporting models: %w", err)
	}
	log.Info("model files written", "count", len(modelFiles), "dir", cfg.Export.OutputDir)

	grid, err := boundary.TimeGrid(cfg.Export.DurationProfile, cfg.Export.TimeStep, cfg.Export.Double)
	if err != nil {
		return err
	}

	buildings := prj.Buildings
	if *onlyBuilding != "" {
		b, err := prj.FindBuilding(*onlyBuilding)
		if err != nil {
			return fmt.Errorf("filtering export to %s: %w", *onlyBuilding, err)
		}
		buildings = []*building.Building{b}
	}

	notifier, closeNotifier := newNotifier(cfg, log)
	defer closeNotifier()

	for _, b := range buildings {
		artifacts, err := exportBoundary(b, grid, cfg.Export.OutputDir)
		if err != nil {
			return fmt.Errorf("exporting boundary conditions for %s: %w", b.Name, err)
		}
		log.Info("boundary conditions written", "building", b.Name, "artifacts", len(artifacts))

		notifier.buildingExported(prj.Name, b.Name, artifacts)
	}

	log.Info("export complete", "project", prj.Name, "output", cfg.Export.OutputDir)
	return nil
}

// exportBoundary writes the four boundary-condition artifacts for one
// building and returns their paths.
func exportBoundary(b *building.Building, grid []int, dir string) ([]string, error) {
	exp := boundary.New(b)
	exp.CalcAuxiliaryAttributes()

	var artifacts []string
	heat, err := exp.ExportSetTemperatureHeating(dir)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, heat)

	cool, err := exp.ExportSetTemperatureCooling(dir)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, cool)

	gains, err := exp.ExportInternalGains(dir)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, gains)

	ahu, err := exp.ExportAHUBoundary(grid, dir)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, ahu)

	return artifacts, nil
}

// runList prints the stored project names.
func runList(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := project.NewSQLiteRepository(db.DB)
	names, err := repo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
