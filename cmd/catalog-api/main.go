package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/tidemark/catalog-api/cmd/catalog-api/commands"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().
		Timestamp().
		Logger()
	ctx := logger.WithContext(context.Background())

	app := &cli.App{
		Name:  "catalog-api",
		Usage: "Channel-scoped product catalog GraphQL API",
		Description: `Serves a GraphQL API over a product catalog backed by MySQL.

This tool provides commands for:
  - Running the HTTP server with the GraphQL endpoint
  - Applying the database schema`,
		Commands: []*cli.Command{
			commands.ServeCommand(&logger),
			commands.MigrateCommand(&logger),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("Application error")
		os.Exit(1)
	}
}
