package session

// Role is the closed set of authorization levels known to the client.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

// adminClaim is the claims value that grants RoleAdmin.
const adminClaim = "admin"

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "guest"
	}
}

// RoleFromClaim maps the "role" claim of an authenticated identity.
// Only the exact value "admin" grants administrative rights.
func RoleFromClaim(claim string) Role {
	if claim == adminClaim {
		return RoleAdmin
	}
	return RoleUser
}
