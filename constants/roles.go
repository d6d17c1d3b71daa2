package constants

// Role is the actor kind encoded in a JWT. Handlers declare the role they
// require instead of comparing raw claim strings.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleChef       Role = "chef"
	RoleLogistics  Role = "logistics"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin, RoleChef, RoleLogistics:
		return true
	default:
		return false
	}
}

// AdminRoles may access the admin back-office.
var AdminRoles = []Role{RoleAdmin, RoleSuperAdmin}
