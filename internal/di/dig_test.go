package di

import (
	"testing"

	"go.uber.org/dig"

	"github.com/tidemark/catalog-api/internal/config"
)

// Test types for dependency injection
type testStore struct {
	Name string
}

type testCache struct {
	Size int
}

type testAPI struct {
	Store *testStore
	Cache *testCache
	Env   string
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "creates container with no providers",
			env:     "dev",
			opts:    nil,
			wantErr: false,
		},
		{
			name: "creates container with single provider",
			env:  "staging",
			opts: []Option{
				WithProviders(func() *testStore {
					return &testStore{Name: "catalog"}
				}),
			},
			wantErr: false,
		},
		{
			name: "creates container with multiple providers",
			env:  "prod",
			opts: []Option{
				WithProviders(
					func() *testStore {
						return &testStore{Name: "catalog"}
					},
					func() *testCache {
						return &testCache{Size: 64}
					},
				),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := New(tt.env, tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if container == nil && !tt.wantErr {
				t.Error("New() returned nil container without error")
			}
		})
	}
}

func TestNew_InvalidProvider(t *testing.T) {
	// Attempting to provide the same type twice should fail
	_, err := New("dev",
		WithProviders(
			func() *testStore {
				return &testStore{Name: "one"}
			},
			func() *testStore {
				return &testStore{Name: "two"}
			},
		),
	)

	if err == nil {
		t.Error("New() should return error when providing duplicate types")
	}
}

func TestNew_ProvidesEnvironment(t *testing.T) {
	expectedEnv := "test-env"
	container, err := New(expectedEnv)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	var actualEnv string
	err = container.Invoke(func(env string) {
		actualEnv = env
	})
	if err != nil {
		t.Fatalf("Invoke() unexpected error: %v", err)
	}

	if actualEnv != expectedEnv {
		t.Errorf("Environment = %v, want %v", actualEnv, expectedEnv)
	}
}

func TestNew_ProvidesConfig(t *testing.T) {
	t.Run("defaults when omitted", func(t *testing.T) {
		container, err := New("dev")
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		cfg := MustGet[config.Config](container)
		if cfg.Server.Addr != config.Default().Server.Addr {
			t.Errorf("Server.Addr = %v, want default", cfg.Server.Addr)
		}
	})

	t.Run("honors WithConfig", func(t *testing.T) {
		want := config.Default()
		want.Server.Addr = ":9090"
		want.Log.Format = "json"

		container, err := New("prod", WithConfig(want))
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		cfg := MustGet[config.Config](container)
		if cfg.Server.Addr != ":9090" {
			t.Errorf("Server.Addr = %v, want :9090", cfg.Server.Addr)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %v, want json", cfg.Log.Format)
		}
	})
}

func TestMustGet(t *testing.T) {
	t.Run("successfully retrieves dependency", func(t *testing.T) {
		container, err := New("dev",
			WithProviders(func() *testStore {
				return &testStore{Name: "catalog"}
			}),
		)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		store := MustGet[*testStore](container)
		if store == nil {
			t.Error("MustGet() returned nil")
		}
		if store.Name != "catalog" {
			t.Errorf("Store.Name = %v, want %v", store.Name, "catalog")
		}
	})

	t.Run("panics when dependency not found", func(t *testing.T) {
		container, err := New("dev")
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		defer func() {
			if r := recover(); r == nil {
				t.Error("MustGet() did not panic")
			}
		}()

		_ = MustGet[*testStore](container)
	})
}

func TestDependencyInjection(t *testing.T) {
	t.Run("resolves dependencies automatically", func(t *testing.T) {
		container, err := New("production",
			WithProviders(
				func() *testStore {
					return &testStore{Name: "catalog"}
				},
				func() *testCache {
					return &testCache{Size: 128}
				},
				func(store *testStore, cache *testCache, env string) *testAPI {
					return &testAPI{
						Store: store,
						Cache: cache,
						Env:   env,
					}
				},
			),
		)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		api := MustGet[*testAPI](container)
		if api.Store.Name != "catalog" {
			t.Errorf("API.Store.Name = %v, want %v", api.Store.Name, "catalog")
		}
		if api.Cache.Size != 128 {
			t.Errorf("API.Cache.Size = %v, want %v", api.Cache.Size, 128)
		}
		if api.Env != "production" {
			t.Errorf("API.Env = %v, want %v", api.Env, "production")
		}
	})

	t.Run("chains multiple WithProviders calls", func(t *testing.T) {
		container, err := New("dev",
			WithProviders(func() *testStore {
				return &testStore{Name: "catalog"}
			}),
			WithProviders(func(store *testStore) *testCache {
				return &testCache{Size: len(store.Name)}
			}),
		)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		cache := MustGet[*testCache](container)
		if cache.Size != len("catalog") {
			t.Errorf("Cache.Size = %v, want %v", cache.Size, len("catalog"))
		}
	})
}

func TestContainer_Interface(t *testing.T) {
	t.Run("implements Container interface", func(t *testing.T) {
		var _ Container = (*dig.Container)(nil)
	})

	t.Run("can be used polymorphically", func(t *testing.T) {
		var container Container
		container, err := New("dev",
			WithProviders(func() *testStore {
				return &testStore{Name: "catalog"}
			}),
		)
		if err != nil {
			t.Fatalf("New() unexpected error: %v", err)
		}

		err = container.Invoke(func(store *testStore) {
			if store.Name != "catalog" {
				t.Errorf("Store.Name = %v, want %v", store.Name, "catalog")
			}
		})
		if err != nil {
			t.Fatalf("Invoke() unexpected error: %v", err)
		}
	})
}
