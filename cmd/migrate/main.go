package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"projectconnect-go/internal/config"
	"projectconnect-go/internal/db"
	"projectconnect-go/pkg/logger"
)

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	log := logger.NewFromEnv()

	cfg, err := config.Load(log)
	if err != nil {
		fatal(log, "migrate: load config", err)
	}

	m, err := db.NewMigrator(cfg.DB.MigrateURL(), log)
	if err != nil {
		fatal(log, "migrate: init", err)
	}
	defer m.Close()

	if err := run(m, args, log); err != nil {
		m.Close()
		fatal(log, "migrate: "+args[0], err)
	}
}

func run(m *migrate.Migrate, args []string, log logger.Logger) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Info("migrate: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid steps argument %q", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Info("migrate: down completed", "steps", steps)

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return err
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			return errors.New("version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := m.Force(v); err != nil {
			return err
		}
		log.Info("migrate: forced", "version", v)

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print the current migration version
  force <V>    Set the migration version without running it

Connection settings come from DB_DSN or DB_HOST, DB_PORT, DB_USER,
DB_PASSWORD, DB_NAME and DB_SSLMODE (a .env file is honoured).`)
}

func fatal(log logger.Logger, message string, err error) {
	log.Critical(message, "err", err)
	os.Exit(1)
}
