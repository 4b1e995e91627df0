package rbac

// Role identifies one of the four staff roles. The set is closed: roles are
// not user-defined and carry no inheritance - owner's superset relationship
// is encoded directly in the permission matrix.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleSales   Role = "sales"
	RoleSupport Role = "support"
)

// ParseRole validates a raw role string, typically one embedded in a session
// token.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleOwner, RoleManager, RoleSales, RoleSupport:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }

// Permission names a single capability a role may hold.
type Permission string

const (
	PermManageUsers          Permission = "manage_users"
	PermManageSettings       Permission = "manage_settings"
	PermViewFinancials       Permission = "view_financials"
	PermViewReports          Permission = "view_reports"
	PermExportData           Permission = "export_data"
	PermCreateInvoices       Permission = "create_invoices"
	PermEditInvoices         Permission = "edit_invoices"
	PermDeleteInvoices       Permission = "delete_invoices"
	PermCreateProposals      Permission = "create_proposals"
	PermEditProposals        Permission = "edit_proposals"
	PermManageLeads          Permission = "manage_leads"
	PermAssignLeads          Permission = "assign_leads"
	PermManageCustomers      Permission = "manage_customers"
	PermManageSubcontractors Permission = "manage_subcontractors"
	PermSendMessages         Permission = "send_messages"
	PermManageContent        Permission = "manage_content"
)

// AllPermissions lists every defined capability. Owner holds all of them.
var AllPermissions = []Permission{
	PermManageUsers,
	PermManageSettings,
	PermViewFinancials,
	PermViewReports,
	PermExportData,
	PermCreateInvoices,
	PermEditInvoices,
	PermDeleteInvoices,
	PermCreateProposals,
	PermEditProposals,
	PermManageLeads,
	PermAssignLeads,
	PermManageCustomers,
	PermManageSubcontractors,
	PermSendMessages,
	PermManageContent,
}

// matrix is the static role-to-capability mapping. It is immutable
// process-wide configuration: built once at package init and only ever read
// afterwards, so no locking is required.
var matrix = map[Role][]Permission{
	RoleOwner: AllPermissions,
	RoleManager: {
		PermViewFinancials,
		PermViewReports,
		PermExportData,
		PermCreateInvoices,
		PermEditInvoices,
		PermCreateProposals,
		PermEditProposals,
		PermManageLeads,
		PermAssignLeads,
		PermManageCustomers,
		PermManageSubcontractors,
		PermSendMessages,
		PermManageContent,
	},
	RoleSales: {
		PermViewReports,
		PermCreateInvoices,
		PermCreateProposals,
		PermEditProposals,
		PermManageLeads,
		PermManageCustomers,
		PermSendMessages,
	},
	RoleSupport: {
		PermViewReports,
		PermManageCustomers,
		PermSendMessages,
	},
}
