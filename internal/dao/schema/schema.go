// Package schema owns the relational schema of the catalog store.
package schema

import (
	"context"
	"database/sql"
	"fmt"
)

// statements are ordered by dependency; MySQL has no transactional DDL, so
// Migrate applies them one by one and stops at the first failure.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		id            CHAR(27) PRIMARY KEY,
		slug          VARCHAR(255) NOT NULL UNIQUE,
		name          VARCHAR(255) NOT NULL,
		currency_code CHAR(3) NOT NULL,
		is_default    TINYINT(1) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id          CHAR(27) PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		slug        VARCHAR(255) NOT NULL UNIQUE,
		description TEXT NOT NULL,
		parent_id   CHAR(27) NULL,
		level       INT NOT NULL DEFAULT 0,
		INDEX idx_categories_parent (parent_id),
		INDEX idx_categories_level (level)
	)`,
	`CREATE TABLE IF NOT EXISTS product_types (
		id                   CHAR(27) PRIMARY KEY,
		name                 VARCHAR(255) NOT NULL,
		slug                 VARCHAR(255) NOT NULL UNIQUE,
		kind                 VARCHAR(32) NOT NULL DEFAULT 'NORMAL',
		is_shipping_required TINYINT(1) NOT NULL DEFAULT 1,
		is_digital           TINYINT(1) NOT NULL DEFAULT 0,
		has_variants         TINYINT(1) NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id                 CHAR(27) PRIMARY KEY,
		name               VARCHAR(255) NOT NULL,
		slug               VARCHAR(255) NOT NULL UNIQUE,
		description        TEXT NOT NULL,
		product_type_id    CHAR(27) NOT NULL,
		category_id        CHAR(27) NULL,
		default_variant_id CHAR(27) NULL,
		external_reference VARCHAR(255) NULL UNIQUE,
		created_at         BIGINT NOT NULL,
		INDEX idx_products_category (category_id),
		INDEX idx_products_type (product_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_channel_listings (
		product_id             CHAR(27) NOT NULL,
		channel_slug           VARCHAR(255) NOT NULL,
		published              TINYINT(1) NOT NULL DEFAULT 0,
		visible_in_listings    TINYINT(1) NOT NULL DEFAULT 1,
		available_for_purchase TINYINT(1) NOT NULL DEFAULT 0,
		price_amount           DECIMAL(12,2) NULL,
		currency               CHAR(3) NULL,
		PRIMARY KEY (product_id, channel_slug)
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id          CHAR(27) PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		slug        VARCHAR(255) NOT NULL UNIQUE,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS collection_products (
		collection_id CHAR(27) NOT NULL,
		product_id    CHAR(27) NOT NULL,
		PRIMARY KEY (collection_id, product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS collection_channel_listings (
		collection_id CHAR(27) NOT NULL,
		channel_slug  VARCHAR(255) NOT NULL,
		published     TINYINT(1) NOT NULL DEFAULT 0,
		PRIMARY KEY (collection_id, channel_slug)
	)`,
	`CREATE TABLE IF NOT EXISTS product_variants (
		id                 CHAR(27) PRIMARY KEY,
		product_id         CHAR(27) NOT NULL,
		name               VARCHAR(255) NOT NULL,
		sku                VARCHAR(255) NULL UNIQUE,
		external_reference VARCHAR(255) NULL UNIQUE,
		track_inventory    TINYINT(1) NOT NULL DEFAULT 1,
		quantity_available INT NOT NULL DEFAULT 0,
		INDEX idx_variants_product (product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS variant_channel_listings (
		variant_id   CHAR(27) NOT NULL,
		channel_slug VARCHAR(255) NOT NULL,
		price_amount DECIMAL(12,2) NOT NULL,
		currency     CHAR(3) NOT NULL,
		PRIMARY KEY (variant_id, channel_slug)
	)`,
	`CREATE TABLE IF NOT EXISTS digital_contents (
		id                   CHAR(27) PRIMARY KEY,
		variant_id           CHAR(27) NOT NULL UNIQUE,
		content_file         VARCHAR(1024) NOT NULL,
		use_default_settings TINYINT(1) NOT NULL DEFAULT 1,
		max_downloads        INT NULL,
		url_valid_days       INT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		id           CHAR(27) PRIMARY KEY,
		variant_id   CHAR(27) NOT NULL,
		channel_slug VARCHAR(255) NOT NULL,
		quantity     INT NOT NULL,
		created_at   BIGINT NOT NULL,
		INDEX idx_order_lines_variant (variant_id),
		INDEX idx_order_lines_created (created_at)
	)`,
}

// Migrate creates the catalog tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
