package di

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/tidemark/catalog-api/internal/config"
)

// ProvideDB opens the MySQL connection pool described by the database config.
func ProvideDB(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
