package entity

// Role is the kind of account a person registers as.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleEmployer  Role = "employer"
)

// DefaultRole is assigned when a registration does not name a role.
const DefaultRole = RoleApplicant

func (r Role) String() string {
	return string(r)
}

// Roles is an ordered set of roles.
type Roles []Role

// AllRoles lists every role an account may hold.
var AllRoles = Roles{RoleApplicant, RoleEmployer}

func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}
