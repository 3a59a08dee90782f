package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"financeflow/internal/config"
	"financeflow/internal/database"
	"financeflow/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsDir = "migrations"

// schemaTables lists the tables owned by the financeflow schema, in the order
// 000001_init creates them.
var schemaTables = []string{"users", "transactions", "savings_goals", "wishlist_items", "audit_logs"}

type command struct {
	name  string
	steps int
}

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("financeflow migration error: %v", err)
	}
}

// parseCommand reads "up", "down [N]", "version", "status" or "force V".
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, fmt.Errorf("usage: migrate <up|down [N]|version|status|force V>")
	}
	cmd := command{name: args[0]}
	switch cmd.name {
	case "up", "version", "status":
		return cmd, nil
	case "down":
		cmd.steps = 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return command{}, fmt.Errorf("invalid step count %q", args[1])
			}
			cmd.steps = n
		}
		return cmd, nil
	case "force":
		if len(args) < 2 {
			return command{}, fmt.Errorf("force needs a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			return command{}, fmt.Errorf("invalid version %q", args[1])
		}
		cmd.steps = v
		return cmd, nil
	}
	return command{}, fmt.Errorf("unknown command: %s (use up, down, version, status or force)", cmd.name)
}

// latestVersion returns the highest up-migration version found in dir.
func latestVersion(dir string) (uint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	var latest uint
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		m, err := source.Parse(e.Name())
		if err != nil {
			return 0, fmt.Errorf("unexpected migration file %s: %w", e.Name(), err)
		}
		if m.Direction == source.Up && m.Version > latest {
			latest = m.Version
		}
	}
	return latest, nil
}

func run(args []string) error {
	cmd, err := parseCommand(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DBDriver != config.DBDriverPostgres {
		return fmt.Errorf("versioned migrations require the postgres driver, got %q; sqlite schemas are auto-migrated on startup", cfg.DBDriver)
	}

	m, err := migrate.New("file://"+migrationsDir, database.NewConfig(cfg).MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to open financeflow schema on %s: %w", cfg.DBName, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	log := logger.Get().With("database", cfg.DBName)

	switch cmd.name {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("financeflow schema upgrade failed: %w", err)
		}
		log.Infow("financeflow schema is up to date", "tables", strings.Join(schemaTables, ","))

	case "down":
		if err := m.Steps(-cmd.steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("financeflow schema rollback failed: %w", err)
		}
		log.Infof("Rolled back %d financeflow migration(s)", cmd.steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to read financeflow schema version: %w", err)
		}
		log.Infow("financeflow schema version", "version", version, "dirty", dirty)

	case "status":
		latest, err := latestVersion(migrationsDir)
		if err != nil {
			return err
		}
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Infow("financeflow schema not created yet", "latest", latest)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read financeflow schema version: %w", err)
		}
		log.Infow("financeflow schema status",
			"version", version,
			"latest", latest,
			"pending", latest > version,
			"dirty", dirty,
		)

	case "force":
		if err := m.Force(cmd.steps); err != nil {
			return fmt.Errorf("failed to force financeflow schema version: %w", err)
		}
		log.Warnf("financeflow schema forced to version %d", cmd.steps)
	}

	return nil
}
