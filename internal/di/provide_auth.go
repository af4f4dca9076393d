package di

import (
	"github.com/tidemark/catalog-api/internal/auth"
	"github.com/tidemark/catalog-api/internal/authz"
	"github.com/tidemark/catalog-api/internal/config"
)

// ProvideAuthenticator creates the bearer token authenticator. With auth
// disabled in config, every request is granted the full catalog permission
// set, which is only intended for local development.
func ProvideAuthenticator(cfg config.Config) *auth.Authenticator {
	if cfg.Auth.Disable {
		permissions := []authz.Permission{
			authz.PermissionManageProducts,
			authz.PermissionManageOrders,
			authz.PermissionManageDiscounts,
			authz.PermissionManageChannels,
		}
		if len(cfg.Auth.DevPermissions) > 0 {
			permissions = permissions[:0]
			for _, p := range cfg.Auth.DevPermissions {
				permissions = append(permissions, authz.Permission(p))
			}
		}
		return auth.NewNoOpAuthenticator(permissions)
	}
	return auth.New(cfg.Auth.Secret)
}

// ProvideChecker creates the policy-backed permission checker.
func ProvideChecker() (*authz.Checker, error) {
	return authz.NewChecker()
}
