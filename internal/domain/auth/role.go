package auth

import "parking-reservation/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

// Role is carried in bearer tokens issued by the operator console.
type Role string

const (
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleOperator: 1,
	RoleAdmin:    2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	want, wantOK := roleRank[min]
	return ok && wantOK && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
