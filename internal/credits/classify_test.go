package credits

import "testing"

func TestClassifyPreservesOrderAndOrdinals(t *testing.T) {
	entries := []Entry{
		{ID: "g1", Name: "Group A", Role: RoleGroup},
		{ID: "c1", Name: "C1", Role: RoleCharacter},
		{ID: "p1", Name: "P1", Role: RolePerson},
		{ID: "c2", Name: "C2", Role: RoleCharacter},
		{ID: "o1", Name: "O1", Role: RoleOther},
		{ID: "p2", Name: "P2", Role: RolePerson},
	}
	c := Classify(entries)

	if len(c.Credits) != len(entries) {
		t.Fatalf("expected %d credits, got %d", len(entries), len(c.Credits))
	}
	for i, credit := range c.Credits {
		if credit.ID != entries[i].ID {
			t.Fatalf("credit %d: got %q want %q", i, credit.ID, entries[i].ID)
		}
		if credit.Consumed {
			t.Fatalf("credit %d should start unconsumed", i)
		}
	}
	if len(c.Persons) != 2 || c.Persons[0].ID != "p1" || c.Persons[1].ID != "p2" {
		t.Fatalf("unexpected persons: %+v", c.Persons)
	}
	if len(c.Characters) != 2 || c.Characters[1].Ordinal != 1 {
		t.Fatalf("unexpected characters: %+v", c.Characters)
	}
	if len(c.Groups) != 1 || len(c.Others) != 1 {
		t.Fatalf("unexpected groups/others: %d/%d", len(c.Groups), len(c.Others))
	}

	c.Persons[0].Consumed = true
	if !c.Credits[2].Consumed {
		t.Fatal("expected role sublist to share credits with the ordered list")
	}
}

func TestParseRole(t *testing.T) {
	tests := map[string]Role{
		"Group":     RoleGroup,
		"Person":    RolePerson,
		"Character": RoleCharacter,
		"Other":     RoleOther,
		"Orchestra": RoleOther,
		"Choir":     RoleOther,
		"":          RoleOther,
	}
	for input, want := range tests {
		if got := ParseRole(input); got != want {
			t.Errorf("ParseRole(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestPairByPosition(t *testing.T) {
	persons := Classify([]Entry{
		{ID: "p1", Name: "P1", Role: RolePerson},
		{ID: "p2", Name: "P2", Role: RolePerson},
	}).Persons

	tests := []struct {
		name    string
		ordinal int
		persons []*Credit
		wantID  string
	}{
		{"first", 0, persons, "p1"},
		{"second", 1, persons, "p2"},
		{"more characters than persons", 2, persons, ""},
		{"no persons", 0, nil, ""},
		{"negative ordinal", -1, persons, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PairByPosition(tt.ordinal, tt.persons)
			if tt.wantID == "" {
				if ok || got != nil {
					t.Fatalf("expected no pair, got %+v", got)
				}
				return
			}
			if !ok || got.ID != tt.wantID {
				t.Fatalf("expected %s, got %+v (ok=%v)", tt.wantID, got, ok)
			}
		})
	}
}

func TestMemberActive(t *testing.T) {
	tests := []struct {
		name        string
		begin, end  string
		releaseDate string
		want        bool
	}{
		{"inside window", "2010-01-01", "2015-01-01", "2012-06-01", true},
		{"after window", "2010-01-01", "2015-01-01", "2016-01-01", false},
		{"before window", "2010-01-01", "2015-01-01", "2009-12-31", false},
		{"on begin", "2010-01-01", "2015-01-01", "2010-01-01", true},
		{"on end", "2010-01-01", "2015-01-01", "2015-01-01", false},
		{"open ended after begin", "2010", "", "2020-05-05", true},
		{"open ended before begin", "2010-06", "", "2010-05-31", false},
		{"no window", "", "", "2020-01-01", true},
		{"only end", "", "2015-01-01", "2020-01-01", true},
		{"no release date", "2010-01-01", "2015-01-01", "", true},
		{"unparseable release date", "2010-01-01", "2015-01-01", "someday", true},
		{"partial release date", "2010-01-01", "2015-01-01", "2012", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MemberActive(tt.begin, tt.end, tt.releaseDate); got != tt.want {
				t.Fatalf("MemberActive(%q, %q, %q) = %v, want %v", tt.begin, tt.end, tt.releaseDate, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	nodes := []*Node{
		{Name: "Band", Role: RoleGroup, Children: []*Node{{Name: "Alice"}, {Name: "Bob"}}},
		{Name: "Solo", Role: RolePerson},
		{Name: "Empty", Role: RoleGroup, Children: []*Node{}},
	}
	if got, want := Render(nodes), "Band（Alice、Bob）、Solo、Empty"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
	if Render(nil) != "" {
		t.Fatal("expected empty render for no nodes")
	}
}
