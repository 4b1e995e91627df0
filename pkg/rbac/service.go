package rbac

import (
	"context"
	"errors"
)

// Authorizer answers whether a role holds a capability. Checks are lookups
// into a precomputed set, so they are safe for concurrent use on hot request
// paths.
type Authorizer interface {
	// Can checks if a role has the specified permission.
	Can(role Role, permission Permission) error

	// CanAny checks if a role has any of the provided permissions.
	CanAny(role Role, permissions ...Permission) error

	// CanAll checks if a role has all of the provided permissions.
	CanAll(role Role, permissions ...Permission) error

	// CanFromContext checks if the role in context has the specified permission.
	CanFromContext(ctx context.Context, permission Permission) error

	// Permissions returns the capabilities granted to a role.
	Permissions(role Role) []Permission
}

// authorizer implements the Authorizer interface.
type authorizer struct {
	// grants contains the permission set for each role, precomputed from the
	// matrix. Treated as immutable after construction for thread safety.
	grants map[Role]map[Permission]bool
}

// NewAuthorizer builds an Authorizer from the static permission matrix.
func NewAuthorizer() Authorizer {
	grants := make(map[Role]map[Permission]bool, len(matrix))
	for role, permissions := range matrix {
		set := make(map[Permission]bool, len(permissions))
		for _, p := range permissions {
			set[p] = true
		}
		grants[role] = set
	}

	return &authorizer{grants: grants}
}

func (a *authorizer) Can(role Role, permission Permission) error {
	permissions, exists := a.grants[role]
	if !exists {
		return ErrInvalidRole
	}

	if !permissions[permission] {
		return ErrInsufficientPermissions
	}

	return nil
}

func (a *authorizer) CanAny(role Role, permissions ...Permission) error {
	if len(permissions) == 0 {
		return nil
	}

	granted, exists := a.grants[role]
	if !exists {
		return ErrInvalidRole
	}

	for _, p := range permissions {
		if granted[p] {
			return nil
		}
	}

	return ErrInsufficientPermissions
}

func (a *authorizer) CanAll(role Role, permissions ...Permission) error {
	if len(permissions) == 0 {
		return nil
	}

	granted, exists := a.grants[role]
	if !exists {
		return ErrInvalidRole
	}

	for _, p := range permissions {
		if !granted[p] {
			return ErrInsufficientPermissions
		}
	}

	return nil
}

func (a *authorizer) CanFromContext(ctx context.Context, permission Permission) error {
	role, ok := RoleFromContext(ctx)
	if !ok {
		return errors.Join(ErrRoleNotInContext, ErrInsufficientPermissions)
	}

	return a.Can(role, permission)
}

func (a *authorizer) Permissions(role Role) []Permission {
	granted, exists := a.grants[role]
	if !exists {
		return nil
	}

	result := make([]Permission, 0, len(granted))
	for _, p := range AllPermissions {
		if granted[p] {
			result = append(result, p)
		}
	}
	return result
}
