package enums

import (
	"fmt"
	"strings"
)

// Role is one of the five professional personas. It drives which dashboard
// and filter set a user sees; the API treats it as account metadata only.
type Role string

const (
	RoleInvestor   Role = "investor"
	RoleContractor Role = "contractor"
	RoleConsultant Role = "consultant"
	RoleDeveloper  Role = "developer"
	RoleSupplier   Role = "supplier"
)

var allRoles = []Role{
	RoleInvestor,
	RoleContractor,
	RoleConsultant,
	RoleDeveloper,
	RoleSupplier,
}

func (r Role) IsValid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole normalizes and validates a persona string.
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", value)
	}
	return role, nil
}

// Roles returns the full persona set in declaration order.
func Roles() []Role {
	return append([]Role(nil), allRoles...)
}
