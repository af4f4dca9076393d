package di

import "github.com/tidemark/catalog-api/internal/config"

// Option is a function that configures the dependency injection container.
type Option func(*options)

// WithConfig registers the application config used by the core providers.
// When omitted, config.Default() is used.
func WithConfig(cfg config.Config) Option {
	return func(opts *options) {
		opts.config = cfg
	}
}

// WithProviders adds constructor functions to the dependency injection container.
// Each provider should be a constructor function that returns one or more values.
// Providers can declare dependencies as function parameters, which will be
// automatically resolved by the container.
//
// Example:
//
//	WithProviders(
//	    func() *sql.DB { return db },
//	    func(db *sql.DB) *categorydao.DAO { return categorydao.New(db) },
//	)
func WithProviders(providers ...any) Option {
	return func(opts *options) {
		opts.providers = append(opts.providers, providers...)
	}
}

type options struct {
	config    config.Config
	providers []any
}
