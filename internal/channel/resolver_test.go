package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidemark/catalog-api/internal/authz"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

type fakeChecker struct {
	allow bool
}

func (f *fakeChecker) HasAny(context.Context, authz.Requestor, []authz.Permission) bool {
	return f.allow
}

type fakeStore struct {
	slug  string
	err   error
	calls int
}

func (f *fakeStore) DefaultSlug(context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.slug, nil
}

func strPtr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		privileged bool
		explicit   *string
		storeSlug  string
		storeErr   error
		want       *string
		wantErr    error
	}{
		{
			name:       "explicit channel wins for anonymous callers",
			privileged: false,
			explicit:   strPtr("emea"),
			storeSlug:  "default-channel",
			want:       strPtr("emea"),
		},
		{
			name:       "explicit channel wins for privileged callers",
			privileged: true,
			explicit:   strPtr("emea"),
			want:       strPtr("emea"),
		},
		{
			name:       "privileged caller without explicit channel is unrestricted",
			privileged: true,
			want:       nil,
		},
		{
			name:       "anonymous caller falls back to the default channel",
			privileged: false,
			storeSlug:  "default-channel",
			want:       strPtr("default-channel"),
		},
		{
			name:       "no default configured",
			privileged: false,
			storeErr:   apierrors.ErrNoDefaultChannel,
			wantErr:    apierrors.ErrNoDefaultChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{slug: tt.storeSlug, err: tt.storeErr}
			resolver := NewResolver(&fakeChecker{allow: tt.privileged}, NewProvider(store))

			got, err := resolver.Resolve(ctx, authz.Anonymous(), tt.explicit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestProviderCachesLookups(t *testing.T) {
	store := &fakeStore{slug: "default-channel"}
	provider := NewProvider(store)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		slug, err := provider.DefaultSlug(ctx)
		require.NoError(t, err)
		assert.Equal(t, "default-channel", slug)
	}

	assert.Equal(t, 1, store.calls)
}

func TestProviderDoesNotCacheFailures(t *testing.T) {
	store := &fakeStore{err: apierrors.ErrNoDefaultChannel}
	provider := NewProvider(store)

	ctx := context.Background()
	_, err := provider.DefaultSlug(ctx)
	assert.ErrorIs(t, err, apierrors.ErrNoDefaultChannel)
	_, err = provider.DefaultSlug(ctx)
	assert.ErrorIs(t, err, apierrors.ErrNoDefaultChannel)
	assert.Equal(t, 2, store.calls)
}

func TestContextWrapping(t *testing.T) {
	type product struct{ name string }

	wrapped := NewContext(&product{name: "chair"}, strPtr("emea"))
	assert.Equal(t, "chair", wrapped.Node().name)
	require.NotNil(t, wrapped.Slug())
	assert.Equal(t, "emea", *wrapped.Slug())

	unrestricted := NewContext(&product{name: "desk"}, nil)
	assert.Nil(t, unrestricted.Slug())
}
