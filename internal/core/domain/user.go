package domain

// Role is the closed set of actor kinds a session can be logged in as.
type Role string

const (
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// Fixed staff account. There is exactly one.
const (
	StaffUsername = "staff"
	StaffPassword = "1234"
	StaffName     = "Staff"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleCustomer
}

// User is the active actor of a session.
type User struct {
	Role Role   `json:"role"`
	Name string `json:"name"`
}

func (u User) IsStaff() bool    { return u.Role == RoleStaff }
func (u User) IsCustomer() bool { return u.Role == RoleCustomer }

// Credential is a registered customer login. Immutable once registered.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
