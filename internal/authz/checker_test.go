package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerHasAny(t *testing.T) {
	checker, err := NewChecker()
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name      string
		requestor Requestor
		required  []Permission
		want      bool
	}{
		{
			name:      "anonymous requestor is denied",
			requestor: Anonymous(),
			required:  AllCatalogVisibility,
			want:      false,
		},
		{
			name: "single matching permission",
			requestor: Requestor{
				Sub:         "staff-1",
				Permissions: []Permission{PermissionManageProducts},
			},
			required: AllCatalogVisibility,
			want:     true,
		},
		{
			name: "any of the set suffices",
			requestor: Requestor{
				Sub:         "service-1",
				Permissions: []Permission{PermissionManageDiscounts},
			},
			required: AllCatalogVisibility,
			want:     true,
		},
		{
			name: "unrelated permission is denied",
			requestor: Requestor{
				Sub:         "staff-2",
				Permissions: []Permission{PermissionManageChannels},
			},
			required: AllCatalogVisibility,
			want:     false,
		},
		{
			name: "empty required set is denied",
			requestor: Requestor{
				Sub:         "staff-3",
				Permissions: []Permission{PermissionManageProducts},
			},
			required: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checker.HasAny(ctx, tt.requestor, tt.required)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnonymous(t *testing.T) {
	r := Anonymous()
	assert.True(t, r.IsAnonymous())
	assert.Empty(t, r.Permissions)

	staff := Requestor{Sub: "staff-1"}
	assert.False(t, staff.IsAnonymous())
}
