package credits_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"annig/internal/artistcache"
	"annig/internal/credits"
	"annig/internal/services"
)

type fakeDirectory struct {
	members     map[string][]credits.Member
	actors      map[string]credits.Entry
	memberErr   error
	actorErr    error
	memberCalls []string
	actorCalls  []string
}

func (f *fakeDirectory) GroupMembers(_ context.Context, groupID string) ([]credits.Member, error) {
	f.memberCalls = append(f.memberCalls, groupID)
	if f.memberErr != nil {
		return nil, f.memberErr
	}
	return f.members[groupID], nil
}

func (f *fakeDirectory) VoiceActor(_ context.Context, characterID string) (credits.Entry, error) {
	f.actorCalls = append(f.actorCalls, characterID)
	if f.actorErr != nil {
		return credits.Entry{}, f.actorErr
	}
	actor, ok := f.actors[characterID]
	if !ok {
		return credits.Entry{}, services.Wrap(services.ErrNotFound, "fake", "voice actor", characterID, nil)
	}
	return actor, nil
}

func group(id, name string) credits.Entry {
	return credits.Entry{ID: id, Name: name, Role: credits.RoleGroup}
}

func person(id, name string) credits.Entry {
	return credits.Entry{ID: id, Name: name, Role: credits.RolePerson}
}

func character(id, name string) credits.Entry {
	return credits.Entry{ID: id, Name: name, Role: credits.RoleCharacter}
}

func other(id, name string) credits.Entry {
	return credits.Entry{ID: id, Name: name, Role: credits.RoleOther}
}

func mustCredit(t *testing.T, r *credits.Resolver, entries []credits.Entry, releaseDate string) string {
	t.Helper()
	got, err := r.Credit(context.Background(), entries, releaseDate)
	if err != nil {
		t.Fatalf("Credit returned error: %v", err)
	}
	return got
}

func TestPersonsOnlyJoinInOrder(t *testing.T) {
	dir := &fakeDirectory{}
	r := credits.NewResolver(dir, artistcache.New(nil), nil)

	got := mustCredit(t, r, []credits.Entry{person("p1", "Alice"), person("p2", "Bob、Jr"), other("o1", "Guest")}, "2020-01-01")
	if want := "Alice、Bob、、Jr、Guest"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if len(dir.memberCalls)+len(dir.actorCalls) != 0 {
		t.Fatal("expected no directory calls")
	}
}

func TestCharactersPairByPositionUnderGroup(t *testing.T) {
	dir := &fakeDirectory{}
	r := credits.NewResolver(dir, artistcache.New(nil), nil)

	entries := []credits.Entry{
		group("g1", "Group A"),
		character("c1", "Kasumi"),
		person("p1", "Aiba Aimi"),
		character("c2", "Arisa"),
		person("p2", "Itou Ayasa"),
	}
	got := mustCredit(t, r, entries, "")
	if want := "Group A（Kasumi（Aiba Aimi）、Arisa（Itou Ayasa））"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if len(dir.memberCalls) != 0 || len(dir.actorCalls) != 0 {
		t.Fatalf("expected no directory calls, got members=%v actors=%v", dir.memberCalls, dir.actorCalls)
	}
}

func TestPairingIgnoresNames(t *testing.T) {
	r := credits.NewResolver(&fakeDirectory{}, artistcache.New(nil), nil)
	entries := []credits.Entry{
		character("c1", "Alice"),
		character("c2", "Bob"),
		person("p1", "Voice of Bob"),
		person("p2", "Voice of Alice"),
	}
	got := mustCredit(t, r, entries, "")
	if want := "Alice（Voice of Bob）、Bob（Voice of Alice）"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestCharacterCacheIsMonotonic(t *testing.T) {
	cache := artistcache.New(nil)
	r := credits.NewResolver(&fakeDirectory{}, cache, nil)

	first := mustCredit(t, r, []credits.Entry{character("c1", "Chara"), person("p1", "First")}, "")
	if first != "Chara（First）" {
		t.Fatalf("unexpected first resolution %q", first)
	}
	second := mustCredit(t, r, []credits.Entry{character("c1", "Chara"), person("p2", "Second")}, "")
	if second != "Chara（First）" {
		t.Fatalf("expected cached person to win, got %q", second)
	}
	if person, _ := cache.Character("Chara"); person != "First" {
		t.Fatalf("expected cache unchanged, got %q", person)
	}
}

func TestCharacterWithoutPairUsesDirectoryOnce(t *testing.T) {
	dir := &fakeDirectory{actors: map[string]credits.Entry{"c1": person("va", "Voice、Actor")}}
	r := credits.NewResolver(dir, artistcache.New(nil), nil)

	for i := 0; i < 2; i++ {
		got := mustCredit(t, r, []credits.Entry{group("g1", "Unit"), character("c1", "Chara"), person("x", "Extra")}, "")
		// The positional person pairs with the only character, so the directory is not needed.
		if got != "Unit（Chara（Extra））" {
			t.Fatalf("unexpected pairing result %q", got)
		}
	}

	r = credits.NewResolver(dir, artistcache.New(nil), nil)
	for i := 0; i < 2; i++ {
		got := mustCredit(t, r, []credits.Entry{character("c1", "Chara")}, "")
		if got != "Chara（Voice、、Actor）" {
			t.Fatalf("unexpected lookup result %q", got)
		}
	}
	if len(dir.actorCalls) != 1 {
		t.Fatalf("expected exactly one voice actor lookup, got %v", dir.actorCalls)
	}
}

func TestCharacterWithoutVoiceActorKeepsBareName(t *testing.T) {
	tests := []struct {
		name string
		dir  *fakeDirectory
	}{
		{"not found", &fakeDirectory{}},
		{"transport failure", &fakeDirectory{actorErr: services.Wrap(services.ErrTransport, "fake", "voice actor", "503", nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := artistcache.New(nil)
			r := credits.NewResolver(tt.dir, cache, nil)
			got := mustCredit(t, r, []credits.Entry{character("c1", "Chara")}, "")
			if got != "Chara" {
				t.Fatalf("expected bare character name, got %q", got)
			}
			if _, ok := cache.Character("Chara"); ok {
				t.Fatal("expected nothing cached for a failed lookup")
			}
		})
	}
}

func TestGroupMembersFromDirectory(t *testing.T) {
	dir := &fakeDirectory{members: map[string][]credits.Member{
		"g1": {
			{Entry: person("p1", "Alice")},
			{Entry: person("p2", "Bob")},
		},
	}}
	cache := artistcache.New(nil)
	r := credits.NewResolver(dir, cache, nil)

	for i := 0; i < 2; i++ {
		got := mustCredit(t, r, []credits.Entry{group("g1", "Band")}, "2020-01-01")
		if got != "Band（Alice、Bob）" {
			t.Fatalf("got %q want %q", got, "Band（Alice、Bob）")
		}
	}
	if len(dir.memberCalls) != 1 {
		t.Fatalf("expected one membership lookup, got %v", dir.memberCalls)
	}
	if members, ok := cache.Group("Band"); !ok || len(members) != 2 {
		t.Fatalf("expected cached members, got %#v", members)
	}
}

func TestGroupMembersFilteredByDateWithCharacters(t *testing.T) {
	dir := &fakeDirectory{
		members: map[string][]credits.Member{
			"g1": {
				{Entry: person("p1", "Alice"), Begin: "2010-01-01", End: "2015-01-01"},
				{Entry: person("p2", "Bob"), Begin: "2014-01-01"},
				{Entry: character("c1", "Chara")},
				{Entry: character("c2", "Known")},
			},
		},
		actors: map[string]credits.Entry{"c1": person("va", "Voice")},
	}
	cache := artistcache.New(nil)
	cache.StoreCharacter("Known", "Cached Voice")
	r := credits.NewResolver(dir, cache, nil)

	got := mustCredit(t, r, []credits.Entry{group("g1", "Band")}, "2016-01-01")
	if want := "Band（Bob、Chara（Voice）、Known（Cached Voice））"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if len(dir.actorCalls) != 1 || dir.actorCalls[0] != "c1" {
		t.Fatalf("expected only the uncached character to be looked up, got %v", dir.actorCalls)
	}
	if person, _ := cache.Character("Chara"); person != "Voice" {
		t.Fatalf("expected looked-up voice actor cached, got %q", person)
	}
}

func TestGroupMembershipIncludesMemberInsideWindow(t *testing.T) {
	dir := &fakeDirectory{members: map[string][]credits.Member{
		"g1": {{Entry: person("p1", "Alice"), Begin: "2010-01-01", End: "2015-01-01"}},
	}}
	got := mustCredit(t, credits.NewResolver(dir, artistcache.New(nil), nil), []credits.Entry{group("g1", "Band")}, "2012-06-01")
	if got != "Band（Alice）" {
		t.Fatalf("got %q", got)
	}
}

func TestGroupWithCreditedMembersSkipsDirectory(t *testing.T) {
	dir := &fakeDirectory{}
	r := credits.NewResolver(dir, artistcache.New(nil), nil)
	entries := []credits.Entry{
		person("p0", "Lead"),
		group("g1", "Band"),
		person("p1", "Alice"),
		other("o1", "Strings"),
		group("g2", "Other Band"),
		person("p2", "Bob"),
	}
	got := mustCredit(t, r, entries, "")
	if want := "Lead、Band（Alice、Strings）、Other Band（Bob）"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if len(dir.memberCalls) != 0 {
		t.Fatalf("expected no membership lookups, got %v", dir.memberCalls)
	}
}

func TestGroupLookupFailureDegrades(t *testing.T) {
	dir := &fakeDirectory{memberErr: errors.New("connection reset")}
	cache := artistcache.New(nil)
	r := credits.NewResolver(dir, cache, nil)

	got := mustCredit(t, r, []credits.Entry{group("g1", "Band、Unit")}, "")
	if got != "Band、、Unit" {
		t.Fatalf("expected bare escaped group name, got %q", got)
	}
	if _, ok := cache.Group("Band、、Unit"); ok {
		t.Fatal("expected failed lookup not to be cached")
	}
}

func TestGroupCacheKeyedByEscapedName(t *testing.T) {
	cache := artistcache.New(nil)
	cache.StoreGroup("A、、B", []artistcache.Member{{ID: "p1", Name: "Cached"}})
	dir := &fakeDirectory{}
	got := mustCredit(t, credits.NewResolver(dir, cache, nil), []credits.Entry{group("g1", "A、B")}, "")
	if got != "A、、B（Cached）" {
		t.Fatalf("got %q", got)
	}
	if len(dir.memberCalls) != 0 {
		t.Fatal("expected cache hit")
	}
}

func TestNilDirectoryLeavesGroupsEmpty(t *testing.T) {
	r := credits.NewResolver(nil, nil, nil)
	got := mustCredit(t, r, []credits.Entry{group("g1", "Band"), character("c1", "Chara")}, "")
	if got != "Band（Chara）" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := &fakeDirectory{actorErr: fmt.Errorf("request: %w", context.Canceled)}
	r := credits.NewResolver(dir, artistcache.New(nil), nil)
	if _, err := r.Resolve(ctx, []credits.Entry{character("c1", "Chara")}, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestResolveTreeShape(t *testing.T) {
	r := credits.NewResolver(&fakeDirectory{}, artistcache.New(nil), nil)
	nodes, err := r.Resolve(context.Background(), []credits.Entry{group("g1", "Band"), person("p1", "Alice")}, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Role != credits.RoleGroup || len(nodes[0].Children) != 1 {
		t.Fatalf("unexpected tree: %#v", nodes)
	}
	if nodes[0].Children[0].ID != "p1" || nodes[0].Children[0].Name != "Alice" {
		t.Fatalf("unexpected child: %#v", nodes[0].Children[0])
	}
}
