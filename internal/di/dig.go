// Package di provides a lightweight wrapper around uber's dig dependency injection framework.
// It simplifies container setup and provides type-safe dependency retrieval with generics.
package di

import (
	"go.uber.org/dig"

	"github.com/tidemark/catalog-api/internal/config"
)

// Container defines a dependency injection container based on uber's dig.
// This interface allows for easy testing and mocking of the DI container.
type Container interface {
	// Invoke executes a function, injecting its dependencies from the container.
	Invoke(function any, opts ...dig.InvokeOption) error

	// Provide registers a constructor function in the container.
	Provide(constructor any, opts ...dig.ProvideOption) error

	// Scope creates a scoped sub-container with its own set of values.
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

// MustGet returns an instance constructed via dependency injection or panics.
// This is a convenience function for retrieving a dependency from the container
// when you're certain it exists. If the dependency cannot be resolved, it will panic.
//
// Example:
//
//	db := MustGet[*sql.DB](container)
func MustGet[T any](container Container) (want T) {
	callback := func(got T) {
		want = got
	}
	if err := container.Invoke(callback); err != nil {
		panic(err)
	}
	return want
}

// New creates a new dependency injection container for the given environment.
// The environment string is automatically registered as a string dependency
// that can be injected as a regular string parameter.
//
// Example:
//
//	container, err := New("production",
//	    WithConfig(cfg),
//	    WithProviders(
//	        func(db *sql.DB) *channeldao.DAO { return channeldao.New(db) },
//	    ),
//	)
func New(env string, opts ...Option) (Container, error) {
	// Build options
	var o options
	o.config = config.Default()
	for _, opt := range opts {
		opt(&o)
	}

	// Create dig container
	container := dig.New()
	if err := container.Provide(func() string { return env }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() config.Config { return o.config }); err != nil {
		return nil, err
	}

	// Register all provided constructors
	for _, provider := range core {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	// Register all provided constructors
	for _, provider := range o.providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

var core = []any{
	ProvideLogger,
	ProvideDB,
	ProvideChannelDAO,
	ProvideCategoryDAO,
	ProvideCollectionDAO,
	ProvideDigitalContentDAO,
	ProvideProductDAO,
	ProvideProductTypeDAO,
	ProvideVariantDAO,
	ProvideChannelStore,
	ProvideCategoryStore,
	ProvideCollectionStore,
	ProvideDigitalContentStore,
	ProvideProductStore,
	ProvideProductTypeStore,
	ProvideVariantStore,
	ProvideAuthenticator,
	ProvideChecker,
	ProvideChannelProvider,
	ProvideChannelResolver,
	ProvideCatalogService,
	ProvideGraphQL,
}
