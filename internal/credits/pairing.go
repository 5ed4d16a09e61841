package credits

// PairByPosition returns the Person voicing the Character with the given
// ordinal: the nth Character pairs with the nth Person in appearance order.
// Names and ids are not compared. When there are fewer Persons than
// Characters the trailing Characters get no pair.
func PairByPosition(characterOrdinal int, persons []*Credit) (*Credit, bool) {
	if characterOrdinal < 0 || characterOrdinal >= len(persons) {
		return nil, false
	}
	return persons[characterOrdinal], true
}
