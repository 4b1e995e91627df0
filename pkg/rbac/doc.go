// Package rbac provides role-based authorization for staff accounts.
//
// Four fixed roles (owner, manager, sales, support) map to a static matrix
// of named capabilities. The matrix is process-wide configuration, not
// derived data: it is defined once in this package and immutable at runtime.
// Owner is a strict superset of every other role; that single relationship
// is encoded directly in the matrix rather than through role inheritance.
//
// # Usage
//
//	authz := rbac.NewAuthorizer()
//
//	if err := authz.Can(identity.Role, rbac.PermManageUsers); err != nil {
//	    // respond 403
//	}
package rbac
