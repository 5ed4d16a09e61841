package credits

// Role classifies a credited artist.
type Role int

const (
	RoleOther Role = iota
	RoleGroup
	RolePerson
	RoleCharacter
)

func (r Role) String() string {
	switch r {
	case RoleGroup:
		return "Group"
	case RolePerson:
		return "Person"
	case RoleCharacter:
		return "Character"
	default:
		return "Other"
	}
}

// ParseRole maps a MusicBrainz artist type to a Role. Types without their own
// role (Orchestra, Choir, unset) are Other so no credit is ever dropped.
func ParseRole(artistType string) Role {
	switch artistType {
	case "Group":
		return RoleGroup
	case "Person":
		return RolePerson
	case "Character":
		return RoleCharacter
	default:
		return RoleOther
	}
}

// Entry is one raw artist appearance on a release or track. The position of an
// entry in its slice is significant.
type Entry struct {
	ID   string
	Name string
	Role Role
}
