package authz

// Role is a user trust level. Roles form an ordered hierarchy: a higher role
// implies every grant of the roles below it. MUTED is the exception — it is a
// sanction, not an inherited grant, and is only held by actors whose role is
// exactly MUTED.
type Role string

const (
	RoleMuted         Role = "MUTED"
	RoleUser          Role = "USER"
	RoleCommentator   Role = "COMMENTATOR"
	RoleModerator     Role = "MODERATOR"
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleSuperAdmin    Role = "SUPER_ADMINISTRATOR"
)

var roleRank = map[Role]int{
	RoleMuted:         0,
	RoleUser:          1,
	RoleCommentator:   2,
	RoleModerator:     3,
	RoleAdministrator: 4,
	RoleSuperAdmin:    5,
}

// AllRoles returns all valid roles in hierarchy order.
func AllRoles() []Role {
	return []Role{RoleMuted, RoleUser, RoleCommentator, RoleModerator, RoleAdministrator, RoleSuperAdmin}
}

// IsValid reports whether the role is one of the known levels.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// Grants reports whether r inherits the grants of required.
func (r Role) Grants(required Role) bool {
	return roleRank[r] >= roleRank[required]
}
