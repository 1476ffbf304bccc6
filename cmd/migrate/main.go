package main

import (
	"context"
	"flag"
	"log"

	"github.com/dainhan2k4/HDC-Mobile-sub005/internal/app/config"
	pkgconfig "github.com/dainhan2k4/HDC-Mobile-sub005/pkg/config"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/migration"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/postgresql"
)

func main() {
	var (
		direction    = flag.String("direction", "up", "Migration direction: up or down")
		steps        = flag.Int("steps", 0, "Number of steps to migrate (0 = all)")
		migrationDir = flag.String("dir", "migrations", "Directory holding *.up.sql / *.down.sql files")
	)
	flag.Parse()

	ctx := context.Background()

	cfg := &config.Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()

	runner := migration.NewRunner(ctx, pgClient, migration.Config{
		MigrationDir: *migrationDir,
		Schema:       "public",
		TableName:    "schema_migrations",
	})

	if err := runner.EnsureMigrationTable(); err != nil {
		log.Fatalf("Failed to create migration table: %v", err)
	}

	switch *direction {
	case "up":
		if err := runner.MigrateUp(*steps); err != nil {
			log.Fatalf("Failed to migrate up: %v", err)
		}
	case "down":
		if err := runner.MigrateDown(*steps); err != nil {
			log.Fatalf("Failed to migrate down: %v", err)
		}
	default:
		log.Fatalf("Invalid direction: %s. Use 'up' or 'down'", *direction)
	}

	log.Printf("Migration %s completed successfully", *direction)
}
