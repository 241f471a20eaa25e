package entity

// Role is the authority of a principal.
type Role string

const (
	RoleAnonymous Role = ""
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
)

// Principal is the acting identity of an operation. The zero value is anonymous.
type Principal struct {
	ID   int64
	Role Role
}

func (p Principal) IsAuthenticated() bool {
	return p.Role == RoleUser || p.Role == RoleAdmin
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Owns reports whether the principal is the given owner.
func (p Principal) Owns(ownerID int64) bool {
	return p.IsAuthenticated() && p.ID == ownerID
}
