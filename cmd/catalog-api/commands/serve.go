package commands

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/tidemark/catalog-api/internal/config"
	"github.com/tidemark/catalog-api/internal/di"
	"github.com/tidemark/catalog-api/internal/server"
)

// ServeCommand returns the serve command for running the HTTP server
func ServeCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the GraphQL HTTP server",
		Description: `Starts the HTTP server with the GraphQL endpoint on /graphql,
the GraphiQL explorer on GET /graphql, and a health check on /health.

Configuration is read from the config file and CATALOG_* environment
variables. Flags override both.

Examples:
  # Serve with defaults
  catalog-api serve

  # Serve with a config file
  catalog-api serve --config config.yaml

  # Local development without token verification
  catalog-api serve --disable-auth`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				EnvVars: []string{"CATALOG_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address, overrides the config file",
			},
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Environment name",
				Value:   "dev",
				EnvVars: []string{"ENV", "ENVIRONMENT"},
			},
			&cli.BoolFlag{
				Name:    "disable-auth",
				Usage:   "Disable authentication (for local development only)",
				EnvVars: []string{"DISABLE_AUTH"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if addr := c.String("addr"); addr != "" {
				cfg.Server.Addr = addr
			}
			if c.Bool("disable-auth") {
				cfg.Auth.Disable = true
			}

			container, err := di.New(c.String("env"), di.WithConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to setup DI container: %w", err)
			}

			if cfg.Auth.Disable {
				logger.Warn().Msg("Authentication is DISABLED - this should only be used for development")
			}

			logger.Info().
				Str("addr", cfg.Server.Addr).
				Str("env", c.String("env")).
				Msg("Starting HTTP server")

			httpServer := &http.Server{
				Addr:    cfg.Server.Addr,
				Handler: server.New(container),
			}
			return httpServer.ListenAndServe()
		},
	}
}
