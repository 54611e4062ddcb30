package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/orgball2608/insta-story-player/internal/migrations"
	"github.com/orgball2608/insta-story-player/internal/sqlite"
	"github.com/orgball2608/insta-story-player/pkg/config"
	"github.com/pressly/goose/v3"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|status|reset|create <name>]")
	}

	command := os.Args[1]

	// The create command needs special handling
	if command == "create" {
		if len(os.Args) < 3 {
			log.Fatal("Usage: migrate create <name>")
		}
		createMigration(os.Args[2])
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, dialect, err := open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db, dialect)
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}

	fmt.Printf("Running %s migrations on the %s backend\n", command, cfg.State.Backend)

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Printf("Migrations applied successfully: %d\n", len(results))
	case "down":
		if _, err := provider.Down(ctx); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		fmt.Println("Migration rollback successful")
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %-40s %s\n", s.State, filepath.Base(s.Source.Path), s.AppliedAt.Format("2006-01-02 15:04:05"))
		}
	case "reset":
		if _, err := provider.DownTo(ctx, 0); err != nil {
			log.Fatalf("Failed to reset migrations: %v", err)
		}
		fmt.Println("All migrations have been rolled back")
	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

// open connects to the SQL backend selected by STATE_BACKEND.
func open(ctx context.Context, cfg *config.Config) (*sql.DB, goose.Dialect, error) {
	switch cfg.State.Backend {
	case config.BackendSqlite:
		db, err := sqlite.Connect(ctx, cfg.State.SqlitePath)
		return db, goose.DialectSQLite3, err
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.GetDSN())
		if err != nil {
			return nil, "", err
		}
		return db, goose.DialectPostgres, db.PingContext(ctx)
	default:
		return nil, "", fmt.Errorf("backend %q has no SQL schema", cfg.State.Backend)
	}
}

func createMigration(name string) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get working directory: %v", err)
	}

	migrationsDir := filepath.Join(wd, "internal", "migrations")
	fmt.Printf("Creating migration in: %s\n", migrationsDir)

	if err := goose.Create(nil, migrationsDir, name, "sql"); err != nil {
		log.Fatalf("Failed to create migration: %v", err)
	}
}
