package gql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/dao/digitaldao"
	"github.com/tidemark/catalog-api/internal/globalid"
)

// DigitalContentInput is the input of the digitalContentCreate mutation
type DigitalContentInput struct {
	ContentFile        string
	UseDefaultSettings *bool
	MaxDownloads       *int32
	UrlValidDays       *int32
}

// DigitalContentCreate resolves the digitalContentCreate mutation. Creating
// content for a variant that already has some replaces it.
func (r *Resolver) DigitalContentCreate(ctx context.Context, args struct {
	VariantId graphql.ID
	Input     DigitalContentInput
}) (*DigitalContentResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	variantID, err := globalid.Decode(string(args.VariantId), globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("variant_id", variantID).Msg("digitalContentCreate mutation called")

	input := digitaldao.CreateInput{
		VariantID:    variantID,
		ContentFile:  args.Input.ContentFile,
		MaxDownloads: args.Input.MaxDownloads,
		URLValidDays: args.Input.UrlValidDays,
	}
	if args.Input.UseDefaultSettings != nil {
		input.UseDefaultSettings = *args.Input.UseDefaultSettings
	}

	record, err := r.service.CreateDigitalContent(ctx, input)
	if err != nil {
		return nil, err
	}
	return newDigitalContentResolver(r, record), nil
}

// DigitalContentDelete resolves the digitalContentDelete mutation
func (r *Resolver) DigitalContentDelete(ctx context.Context, args struct {
	VariantId graphql.ID
}) (*ProductVariantResolver, error) {
	if err := r.requirePermission(ctx, authz.PermissionManageProducts); err != nil {
		return nil, err
	}

	variantID, err := globalid.Decode(string(args.VariantId), globalid.TypeProductVariant)
	if err != nil {
		return nil, err
	}

	record, err := r.service.DeleteDigitalContent(ctx, variantID)
	if err != nil {
		return nil, err
	}
	return newProductVariantResolver(r, record, nil), nil
}
