package models

import (
	"math/bits"
	"strings"
)

// Permissions is a set of capabilities. Each permission occupies one bit.
type Permissions uint64

const (
	ReadAllUsers Permissions = 1 << iota
	ReadAllProjects
	ReadAllForms
	ReadAllFormAnswers
	ReadAllRegistrationForms
	ReadAllRegistrationFormAnswers
	ReadAllFiles
	CreateFiles
	ShareFiles
	AnswerForms
	CreateProjects
	CreateForms
	UpdateFormsInPeriod
	UpdateAllProjects
	UpdateAllFormAnswers
	CreateRegistrationForms
	DistributeFiles
	UpdateUserRoles
	DeleteUsers

	permissionsEnd
)

// AllPermissions holds every defined permission.
const AllPermissions = permissionsEnd - 1

var permissionNames = []string{
	"read_all_users",
	"read_all_projects",
	"read_all_forms",
	"read_all_form_answers",
	"read_all_registration_forms",
	"read_all_registration_form_answers",
	"read_all_files",
	"create_files",
	"share_files",
	"answer_forms",
	"create_projects",
	"create_forms",
	"update_forms_in_period",
	"update_all_projects",
	"update_all_form_answers",
	"create_registration_forms",
	"distribute_files",
	"update_user_roles",
	"delete_users",
}

// Contains reports whether every permission in other is also in p.
func (p Permissions) Contains(other Permissions) bool {
	return p&other == other
}

func (p Permissions) Union(other Permissions) Permissions {
	return p | other
}

// Difference returns the permissions in p that are not in other.
func (p Permissions) Difference(other Permissions) Permissions {
	return p &^ other
}

func (p Permissions) IsEmpty() bool {
	return p&AllPermissions == 0
}

// Names lists the permissions in declaration order.
func (p Permissions) Names() []string {
	out := make([]string, 0, bits.OnesCount64(uint64(p&AllPermissions)))
	for i, name := range permissionNames {
		if p&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}

func (p Permissions) String() string {
	return "{" + strings.Join(p.Names(), ",") + "}"
}
