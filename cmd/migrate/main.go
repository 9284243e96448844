package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/erp/usability/internal/bootstrap"
	"github.com/erp/usability/internal/infrastructure/config"
	"github.com/erp/usability/internal/infrastructure/logger"
	"github.com/erp/usability/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	var (
		migrationsPath string
		logLevel       string
	)

	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: migration.path from config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if migrationsPath == "" {
		migrationsPath = cfg.Migration.Path
	}
	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to get absolute path", zap.Error(err))
	}
	migrationsPath = absPath

	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("migrations_path", migrationsPath),
	)

	switch command {
	case "create":
		runCreate(log, migrationsPath, args[1:])
		return
	case "list":
		runList(log, migrationsPath)
		return
	case "upgrade":
		runUpgrade(cfg, log, args[1:])
		return
	}

	// Schema commands go through database/sql
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	m, err := migration.New(db, migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}

	case "down":
		if err := m.Down(); err != nil {
			log.Fatal("Migration down failed", zap.Error(err))
		}

	case "step":
		if len(args) < 2 {
			log.Fatal("Step count required. Usage: migrate step <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid step count", zap.String("value", args[1]))
		}
		if err := m.Steps(n); err != nil {
			log.Fatal("Migration step failed", zap.Error(err))
		}

	case "goto":
		if len(args) < 2 {
			log.Fatal("Version required. Usage: migrate goto <version>")
		}
		version, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			log.Fatal("Invalid version number", zap.String("value", args[1]))
		}
		if err := m.GoTo(uint(version)); err != nil {
			log.Fatal("Migration goto failed", zap.Error(err))
		}

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatal("Failed to get version", zap.Error(err))
		}
		if version == 0 {
			log.Info("No migrations applied")
		} else {
			log.Info("Current migration version",
				zap.Uint("version", version),
				zap.Bool("dirty", dirty),
			)
		}

	case "force":
		if len(args) < 2 {
			log.Fatal("Version required. Usage: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version number", zap.String("value", args[1]))
		}
		log.Warn("Forcing migration version - use with caution!")
		if err := m.Force(version); err != nil {
			log.Fatal("Force version failed", zap.Error(err))
		}

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func runCreate(log *zap.Logger, migrationsPath string, args []string) {
	if len(args) < 1 {
		log.Fatal("Migration name required. Usage: migrate create <name> [description]")
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}

	mf, err := migration.CreateMigration(migrationsPath, args[0], description)
	if err != nil {
		log.Fatal("Failed to create migration", zap.Error(err))
	}
	log.Info("Migration created successfully",
		zap.String("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
}

func runList(log *zap.Logger, migrationsPath string) {
	migrations, err := migration.ListMigrations(migrationsPath)
	if err != nil {
		log.Fatal("Failed to list migrations", zap.Error(err))
	}
	if len(migrations) == 0 {
		log.Info("No migrations found")
		return
	}
	log.Info("Available migrations", zap.Int("count", len(migrations)))
	for _, m := range migrations {
		fmt.Println("  -", m)
	}
}

// runUpgrade runs the data fixes of a module. The installed version comes
// from module_versions unless -from overrides it. Stage "all" runs pre then
// post against the same installed version.
func runUpgrade(cfg *config.Config, log *zap.Logger, args []string) {
	if len(args) < 1 {
		log.Fatal("Module required. Usage: migrate upgrade <module> [-from <version>] [-stage pre|post|all]")
	}
	module := args[0]

	fs := flag.NewFlagSet("upgrade", flag.ExitOnError)
	from := fs.String("from", "", "Installed version to upgrade from (default: recorded version)")
	stage := fs.String("stage", "all", "Upgrade stage: pre, post or all")
	if err := fs.Parse(args[1:]); err != nil {
		log.Fatal("Invalid upgrade flags", zap.Error(err))
	}
	stages := []migration.Stage{migration.Stage(*stage)}
	if *stage == "all" {
		stages = []migration.Stage{migration.StagePre, migration.StagePost}
	}

	db, err := bootstrap.OpenDatabase(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	upgrader, err := migration.NewDefaultUpgrader(db.DB, log)
	if err != nil {
		log.Fatal("Failed to create upgrader", zap.Error(err))
	}

	ctx := context.Background()
	installed := *from
	if installed == "" {
		if installed, err = migration.InstalledVersion(ctx, db.DB, module); err != nil {
			log.Fatal("Failed to read installed version", zap.String("module", module), zap.Error(err))
		}
	}

	for _, st := range stages {
		result, err := upgrader.UpgradeFrom(ctx, module, st, installed)
		if err != nil {
			log.Fatal("Upgrade failed", zap.String("module", module), zap.String("stage", string(st)), zap.Error(err))
		}
		for _, step := range result.Steps {
			log.Info("Applied upgrade step",
				zap.String("module", module),
				zap.String("version", step.Version),
				zap.String("stage", string(step.Stage)),
				zap.Int64("rows", step.Rows),
			)
		}
		log.Info("Upgrade stage finished",
			zap.String("module", module),
			zap.String("stage", string(st)),
			zap.String("installed_version", result.InstalledVersion),
			zap.String("recorded_version", result.RecordedVersion),
			zap.Bool("skipped", result.Skipped),
		)
	}
}

func printUsage() {
	fmt.Println(`Stock Usability Migration Tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                        Apply all pending migrations
  down                      Roll back all migrations
  step <n>                  Apply n migrations (positive=up, negative=down)
  goto <version>            Migrate to a specific version
  version                   Show current migration version
  force <version>           Force set migration version (use with caution)
  create <name> [desc]      Create a new migration file pair
  list                      List available migrations
  upgrade <module> [flags]  Run a module's version-gated data fixes
      -from <version>       Installed version (default: from module_versions)
      -stage pre|post|all   Upgrade stage (default: all)

Flags:
  -path string              Path to migrations directory
  -log-level string         Log level: debug, info, warn, error (default: info)

Environment Variables:
  USABILITY_DATABASE_HOST, USABILITY_DATABASE_PORT, USABILITY_DATABASE_USER,
  USABILITY_DATABASE_PASSWORD, USABILITY_DATABASE_DBNAME

Examples:
  migrate up
  migrate step -1
  migrate upgrade product_usability -from 12.0.1.0.0`)
}
