package globalid

import (
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	key := ksuid.New().String()

	id := Encode(TypeProduct, key)
	got, err := Decode(id, TypeProduct)

	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected Type
		wantErr  bool
	}{
		{
			name:     "matching type",
			id:       Encode(TypeCategory, "2HFj3kLmNoPqRsTuVwXy"),
			expected: TypeCategory,
			wantErr:  false,
		},
		{
			name:     "wrong type",
			id:       Encode(TypeCategory, "2HFj3kLmNoPqRsTuVwXy"),
			expected: TypeProduct,
			wantErr:  true,
		},
		{
			name:     "not base64",
			id:       "!!!not-an-id!!!",
			expected: TypeProduct,
			wantErr:  true,
		},
		{
			name:     "missing separator",
			id:       "UHJvZHVjdA", // base64("Product")
			expected: TypeProduct,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.id, tt.expected)
			if tt.wantErr {
				assert.ErrorIs(t, err, apierrors.ErrInvalidGlobalID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
