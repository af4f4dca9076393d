// Package authz defines the catalog permission model and the policy-backed
// capability checks used by the GraphQL resolvers.
package authz

// Permission is a capability a requestor may hold.
type Permission string

const (
	PermissionManageProducts  Permission = "MANAGE_PRODUCTS"
	PermissionManageOrders    Permission = "MANAGE_ORDERS"
	PermissionManageDiscounts Permission = "MANAGE_DISCOUNTS"
	PermissionManageChannels  Permission = "MANAGE_CHANNELS"
)

// AllCatalogVisibility is the set of permissions that grants access to the
// full catalog, including entities not published on any channel. Requestors
// holding any of these see all channels unless they filter explicitly.
var AllCatalogVisibility = []Permission{
	PermissionManageProducts,
	PermissionManageOrders,
	PermissionManageDiscounts,
}

// Requestor is the authenticated principal issuing a request: a staff user
// or a service account. It is read-only at this layer.
type Requestor struct {
	Sub         string
	Name        string
	Permissions []Permission
}

// Anonymous returns the unauthenticated requestor, which holds no permissions.
func Anonymous() Requestor {
	return Requestor{}
}

// IsAnonymous reports whether the requestor carries no identity.
func (r Requestor) IsAnonymous() bool {
	return r.Sub == ""
}
