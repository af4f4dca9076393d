package commands

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/tidemark/catalog-api/internal/config"
	"github.com/tidemark/catalog-api/internal/dao/schema"
	"github.com/tidemark/catalog-api/internal/di"
)

// MigrateCommand returns the migrate command for applying the database schema
func MigrateCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the catalog database schema",
		Description: `Creates the catalog tables if they do not exist.

Examples:
  # Apply the schema with the default DSN
  catalog-api migrate

  # Apply the schema against a specific database
  CATALOG_DB_DSN='user:pass@tcp(db:3306)/catalog' catalog-api migrate`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				EnvVars: []string{"CATALOG_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			container, err := di.New("migrate", di.WithConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to setup DI container: %w", err)
			}

			db := di.MustGet[*sql.DB](container)
			defer db.Close()

			if err := schema.Migrate(c.Context, db); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			logger.Info().Msg("Schema applied")
			return nil
		},
	}
}
