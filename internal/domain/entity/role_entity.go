package entity

// Role tags stored on a user.
const (
	RoleUser       = "ROLE_USER"
	RoleAdmin      = "ROLE_ADMIN"
	RoleSuperAdmin = "ROLE_SUPER_ADMIN"
)

// DefaultRoles are given to every new user.
var DefaultRoles = []string{RoleUser}

// normalizeRoles deduplicates roles, keeps first-seen order and makes sure
// RoleUser is present.
func normalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles)+1)
	seen := make(map[string]struct{}, len(roles)+1)
	for _, r := range append(append([]string{}, roles...), RoleUser) {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
