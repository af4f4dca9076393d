// Package auth authenticates API callers. Requests carry an HS256-signed
// bearer token whose claims name the principal and its permission set; the
// catalog itself is a public read surface, so a missing or invalid token
// yields an anonymous requestor rather than an error.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidemark/catalog-api/internal/authz"
)

type requestorKey struct{}

// WithRequestor attaches a requestor to the context.
func WithRequestor(ctx context.Context, requestor authz.Requestor) context.Context {
	return context.WithValue(ctx, requestorKey{}, requestor)
}

// RequestorFromContext returns the requestor attached to ctx, or the
// anonymous requestor when none is present.
func RequestorFromContext(ctx context.Context) authz.Requestor {
	if r, ok := ctx.Value(requestorKey{}).(authz.Requestor); ok {
		return r
	}
	return authz.Anonymous()
}

// Authenticator verifies bearer tokens and produces requestors.
type Authenticator struct {
	secret       []byte
	noop         bool
	devRequestor authz.Requestor
}

// New creates an Authenticator that verifies HS256 tokens with the given
// shared secret.
func New(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// NewNoOpAuthenticator creates an Authenticator that grants every request the
// given permissions without looking at the token. This should ONLY be used
// for local development.
func NewNoOpAuthenticator(permissions []authz.Permission) *Authenticator {
	return &Authenticator{
		noop: true,
		devRequestor: authz.Requestor{
			Sub:         "dev",
			Name:        "development requestor",
			Permissions: permissions,
		},
	}
}

// IsNoOp returns true if this is a NoOp authenticator.
func (a *Authenticator) IsNoOp() bool {
	return a.noop
}

// Authenticate parses and verifies a bearer token and returns the requestor
// it names. Claims: sub (principal), name (display name), permissions
// (list of permission names).
func (a *Authenticator) Authenticate(tokenString string) (authz.Requestor, error) {
	if a.noop {
		return a.devRequestor, nil
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return authz.Anonymous(), fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authz.Anonymous(), fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	requestor := authz.Requestor{}
	if sub, ok := claims["sub"].(string); ok {
		requestor.Sub = sub
	}
	if name, ok := claims["name"].(string); ok {
		requestor.Name = name
	}
	if requestor.Sub == "" {
		return authz.Anonymous(), fmt.Errorf("token has no subject")
	}

	if raw, ok := claims["permissions"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok {
				requestor.Permissions = append(requestor.Permissions, authz.Permission(s))
			}
		}
	}

	return requestor, nil
}
