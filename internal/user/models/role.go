package models

import (
	"fmt"

	dErrors "festa/pkg/domain-errors"
)

// Role is the fixed authority level of a user. Roles form a chain: each one holds every
// permission of the roles below it.
type Role string

const (
	RoleGeneral           Role = "general"
	RoleCommittee         Role = "committee"
	RoleCommitteeOperator Role = "committee_operator"
	RoleAdministrator     Role = "administrator"
)

const gib = 1 << 30

var (
	generalPermissions = CreateFiles | ShareFiles | AnswerForms | CreateProjects

	committeePermissions = generalPermissions |
		ReadAllUsers | ReadAllProjects | ReadAllForms | ReadAllFormAnswers |
		ReadAllRegistrationForms | ReadAllRegistrationFormAnswers | ReadAllFiles

	operatorPermissions = committeePermissions |
		CreateForms | UpdateFormsInPeriod | UpdateAllProjects | UpdateAllFormAnswers |
		CreateRegistrationForms | DistributeFiles
)

type roleInfo struct {
	rank        int
	permissions Permissions
	quota       uint64
	limited     bool
}

var roles = map[Role]roleInfo{
	RoleGeneral:           {rank: 0, permissions: generalPermissions, quota: 1 * gib, limited: true},
	RoleCommittee:         {rank: 1, permissions: committeePermissions, quota: 8 * gib, limited: true},
	RoleCommitteeOperator: {rank: 2, permissions: operatorPermissions, quota: 32 * gib, limited: true},
	RoleAdministrator:     {rank: 3, permissions: AllPermissions},
}

// Roles lists every role from least to most privileged.
func Roles() []Role {
	return []Role{RoleGeneral, RoleCommittee, RoleCommitteeOperator, RoleAdministrator}
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown role %q", s))
	}
	return r, nil
}

func (r Role) IsValid() bool {
	_, ok := roles[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// Permissions returns the role's permission set; an unknown role has none.
func (r Role) Permissions() Permissions {
	return roles[r].permissions
}

// IsAtLeast reports whether r ranks at or above other. Unknown roles rank below every
// known one.
func (r Role) IsAtLeast(other Role) bool {
	ri, ok := roles[r]
	if !ok {
		return false
	}
	oi, ok := roles[other]
	if !ok {
		return true
	}
	return ri.rank >= oi.rank
}

// FileUsageQuota returns how many bytes of files users of this role may store. limited
// is false for roles without a quota.
func (r Role) FileUsageQuota() (quota uint64, limited bool) {
	info, ok := roles[r]
	if !ok {
		return 0, true
	}
	return info.quota, info.limited
}

// RequirePermissionsError names the permissions a role lacks.
type RequirePermissionsError struct {
	Role    Role
	Missing Permissions
}

func (e *RequirePermissionsError) Error() string {
	return fmt.Sprintf("role %s lacks permissions %s", e.Role, e.Missing)
}

// RequirePermissions fails with *RequirePermissionsError unless the role holds every
// required permission.
func (r Role) RequirePermissions(required Permissions) error {
	have := r.Permissions()
	if have.Contains(required) {
		return nil
	}
	return &RequirePermissionsError{Role: r, Missing: required.Difference(have)}
}
