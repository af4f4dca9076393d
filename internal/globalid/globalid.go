// Package globalid implements the externally visible ID scheme. A global ID
// encodes the entity type together with the internal key so clients can pass
// IDs between queries without knowing which table they point at.
package globalid

import (
	"encoding/base64"
	"fmt"
	"strings"

	apierrors "github.com/tidemark/catalog-api/internal/errors"
)

// Type identifies the entity an ID belongs to.
type Type string

const (
	TypeCategory       Type = "Category"
	TypeCollection     Type = "Collection"
	TypeProduct        Type = "Product"
	TypeProductType    Type = "ProductType"
	TypeProductVariant Type = "ProductVariant"
	TypeDigitalContent Type = "DigitalContent"
	TypeChannel        Type = "Channel"
)

// Encode builds the opaque external form of an internal key.
func Encode(typ Type, key string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", typ, key)))
}

// Decode unwraps a global ID and verifies it names the expected entity type.
// Internal keys are KSUIDs, so the decoded key sorts by creation time.
func Decode(id string, expected Type) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid ID", apierrors.ErrInvalidGlobalID, id)
	}

	typ, key, ok := strings.Cut(string(raw), ":")
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %q is not a valid ID", apierrors.ErrInvalidGlobalID, id)
	}
	if Type(typ) != expected {
		return "", fmt.Errorf("%w: expected an ID of type %s, got %s", apierrors.ErrInvalidGlobalID, expected, typ)
	}
	return key, nil
}
