package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadvane/leadvane/pkg/rbac"
)

func TestAuthorizer_OwnerIsSuperset(t *testing.T) {
	t.Parallel()

	authz := rbac.NewAuthorizer()

	for _, p := range rbac.AllPermissions {
		assert.NoError(t, authz.Can(rbac.RoleOwner, p), "owner must hold %q", p)
	}

	// Every capability granted to any role is also granted to owner.
	for _, role := range []rbac.Role{rbac.RoleManager, rbac.RoleSales, rbac.RoleSupport} {
		for _, p := range authz.Permissions(role) {
			assert.NoError(t, authz.Can(rbac.RoleOwner, p), "owner must hold %q granted to %s", p, role)
		}
	}
}

func TestAuthorizer_Can(t *testing.T) {
	t.Parallel()

	authz := rbac.NewAuthorizer()

	tests := []struct {
		name       string
		role       rbac.Role
		permission rbac.Permission
		wantErr    error
	}{
		{name: "support cannot manage users", role: rbac.RoleSupport, permission: rbac.PermManageUsers, wantErr: rbac.ErrInsufficientPermissions},
		{name: "support can send messages", role: rbac.RoleSupport, permission: rbac.PermSendMessages},
		{name: "sales can create proposals", role: rbac.RoleSales, permission: rbac.PermCreateProposals},
		{name: "sales cannot view financials", role: rbac.RoleSales, permission: rbac.PermViewFinancials, wantErr: rbac.ErrInsufficientPermissions},
		{name: "manager can view financials", role: rbac.RoleManager, permission: rbac.PermViewFinancials},
		{name: "manager cannot manage users", role: rbac.RoleManager, permission: rbac.PermManageUsers, wantErr: rbac.ErrInsufficientPermissions},
		{name: "manager cannot delete invoices", role: rbac.RoleManager, permission: rbac.PermDeleteInvoices, wantErr: rbac.ErrInsufficientPermissions},
		{name: "unknown role", role: rbac.Role("intern"), permission: rbac.PermSendMessages, wantErr: rbac.ErrInvalidRole},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := authz.Can(tt.role, tt.permission)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizer_CanAnyCanAll(t *testing.T) {
	t.Parallel()

	authz := rbac.NewAuthorizer()

	assert.NoError(t, authz.CanAny(rbac.RoleSupport, rbac.PermManageUsers, rbac.PermSendMessages))
	assert.ErrorIs(t, authz.CanAny(rbac.RoleSupport, rbac.PermManageUsers, rbac.PermViewFinancials), rbac.ErrInsufficientPermissions)

	assert.NoError(t, authz.CanAll(rbac.RoleManager, rbac.PermViewFinancials, rbac.PermManageLeads))
	assert.ErrorIs(t, authz.CanAll(rbac.RoleManager, rbac.PermViewFinancials, rbac.PermManageUsers), rbac.ErrInsufficientPermissions)

	// Empty permission lists are vacuously satisfied.
	assert.NoError(t, authz.CanAny(rbac.RoleSupport))
	assert.NoError(t, authz.CanAll(rbac.RoleSupport))
}

func TestAuthorizer_CanFromContext(t *testing.T) {
	t.Parallel()

	authz := rbac.NewAuthorizer()

	ctx := rbac.ContextWithRole(context.Background(), rbac.RoleOwner)
	assert.NoError(t, authz.CanFromContext(ctx, rbac.PermManageUsers))

	assert.ErrorIs(t, authz.CanFromContext(context.Background(), rbac.PermManageUsers), rbac.ErrRoleNotInContext)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"owner", "manager", "sales", "support"} {
		role, err := rbac.ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := rbac.ParseRole("superadmin")
	assert.ErrorIs(t, err, rbac.ErrInvalidRole)

	_, err = rbac.ParseRole("")
	assert.ErrorIs(t, err, rbac.ErrInvalidRole)
}
