package user

type Role string

const (
	// RoleParent books classes on behalf of owned Student records.
	RoleParent Role = "parent"
	// RoleYoungAdult may book for themselves ("self" participant).
	RoleYoungAdult Role = "youngAdult"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleParent, RoleYoungAdult, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) CanBookSelf() bool {
	return r == RoleYoungAdult
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
