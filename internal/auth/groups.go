// Package auth implements credential login, session tokens and account
// administration for association members.
package auth

// Groups carried by member accounts. A member may belong to several groups;
// route guards check for any overlap.
const (
	GroupAdmin         = "ADMIN"
	GroupAnimalManager = "ANIMAL_MANAGER"
	GroupVeterinarian  = "VETERINARIAN"
	GroupShowOrganizer = "SHOW_ORGANIZER"
	GroupVolunteer     = "VOLUNTEER"
)

// AllGroups lists every assignable group, in display order.
var AllGroups = []string{
	GroupAdmin,
	GroupAnimalManager,
	GroupVeterinarian,
	GroupShowOrganizer,
	GroupVolunteer,
}

// ValidGroup reports whether name is an assignable group.
func ValidGroup(name string) bool {
	for _, g := range AllGroups {
		if g == name {
			return true
		}
	}
	return false
}
