package credits

// Credit is an entry annotated during classification.
type Credit struct {
	Entry
	// Ordinal is the index of the entry among entries of the same role.
	Ordinal int
	// Consumed marks a Person already merged into a Character's display name.
	Consumed bool
}

// Classification partitions credits by role without reordering them.
type Classification struct {
	Credits    []*Credit
	Groups     []*Credit
	Persons    []*Credit
	Characters []*Credit
	Others     []*Credit
}

// Classify wraps every entry in a Credit, keeping input order in Credits and
// appearance order within each role sublist. The sublists share pointers with
// Credits, so marking a Person consumed is visible in both.
func Classify(entries []Entry) *Classification {
	c := &Classification{Credits: make([]*Credit, 0, len(entries))}
	for _, entry := range entries {
		credit := &Credit{Entry: entry}
		switch entry.Role {
		case RoleGroup:
			credit.Ordinal = len(c.Groups)
			c.Groups = append(c.Groups, credit)
		case RolePerson:
			credit.Ordinal = len(c.Persons)
			c.Persons = append(c.Persons, credit)
		case RoleCharacter:
			credit.Ordinal = len(c.Characters)
			c.Characters = append(c.Characters, credit)
		default:
			credit.Ordinal = len(c.Others)
			c.Others = append(c.Others, credit)
		}
		c.Credits = append(c.Credits, credit)
	}
	return c
}
