package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	migrateV4 "github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trivialab/trivia-api/internal/config"
	"github.com/trivialab/trivia-api/pkg/database"
	"github.com/trivialab/trivia-api/pkg/logger"
)

type options struct {
	configPath     string
	migrationsPath string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Database migration commands",
		Long:          `Apply, roll back and inspect trivia-api database migrations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "config/config.yaml"
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfig, "config file path")
	cmd.PersistentFlags().StringVarP(&opts.migrationsPath, "path", "p", "", "migrations directory path (overrides config)")

	cmd.AddCommand(
		newUpCommand(opts),
		newDownCommand(opts),
		newVersionCommand(opts),
		newForceCommand(opts),
	)
	return cmd
}

func newUpCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts, func(m *migrateV4.Migrate, log *logrus.Entry) error {
				return reportChange(log, m.Up(), "Migrations applied")
			})
		},
	}
}

func newDownCommand(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "down [n]",
		Short: "Roll back the last n migrations (default 1)",
		Args:  stepsArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				steps, _ = strconv.Atoi(args[0])
			}
			return withMigrator(opts, func(m *migrateV4.Migrate, log *logrus.Entry) error {
				if all {
					return reportChange(log, m.Down(), "All migrations rolled back")
				}
				return reportChange(log, m.Steps(-steps), fmt.Sprintf("Rolled back %d migration(s)", steps))
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "roll back every migration")
	return cmd
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(opts, func(m *migrateV4.Migrate, log *logrus.Entry) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrateV4.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}
}

func newForceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Set the migration version without running migrations (clears the dirty flag)",
		Args:  versionArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := strconv.Atoi(args[0])
			return withMigrator(opts, func(m *migrateV4.Migrate, log *logrus.Entry) error {
				if err := m.Force(version); err != nil {
					return err
				}
				log.WithField("version", version).Info("Migration version forced")
				return nil
			})
		},
	}
}

// stepsArg допускает не более одного положительного целого аргумента
func stepsArg(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid number of steps %q: must be a positive integer", args[0])
	}
	return nil
}

// versionArg требует ровно одну версию; -1 означает "нет применённых миграций"
func versionArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < -1 {
		return fmt.Errorf("invalid version %q", args[0])
	}
	return nil
}

func reportChange(log *logrus.Entry, err error, done string) error {
	switch {
	case errors.Is(err, migrateV4.ErrNoChange):
		log.Info("No change")
		return nil
	case err != nil:
		return err
	default:
		log.Info(done)
		return nil
	}
}

// withMigrator открывает подключение через lib/pq и передаёт migrate в fn
func withMigrator(opts *options, fn func(*migrateV4.Migrate, *logrus.Entry) error) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	entry := logger.Component(log, "migrate")

	path := cfg.Database.MigrationsPath
	if opts.migrationsPath != "" {
		path = opts.migrationsPath
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.PostgresURL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := database.NewMigrator(sqlDB, path)
	if err != nil {
		return err
	}

	return fn(m, entry.WithField("path", path))
}
