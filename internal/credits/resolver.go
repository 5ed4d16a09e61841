package credits

import (
	"context"
	"errors"
	"log/slog"

	"annig/internal/artistcache"
	"annig/internal/logging"
	"annig/internal/services"
	"annig/internal/textutil"
)

// Directory provides the enrichment lookups used when a credit list does not
// say enough on its own.
type Directory interface {
	// GroupMembers lists a group's members in directory order, unfiltered.
	GroupMembers(ctx context.Context, groupID string) ([]Member, error)
	// VoiceActor returns the person voicing a character.
	VoiceActor(ctx context.Context, characterID string) (Entry, error)
}

// Resolver rebuilds the artist hierarchy of credit lists. The caches it is
// given are shared by every call and consulted before the directory.
type Resolver struct {
	directory Directory
	cache     *artistcache.Store
	logger    *slog.Logger
}

// NewResolver creates a resolver. A nil directory disables enrichment; a nil
// cache gets a fresh in-memory store.
func NewResolver(directory Directory, cache *artistcache.Store, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cache == nil {
		cache = artistcache.New(logger)
	}
	return &Resolver{
		directory: directory,
		cache:     cache,
		logger:    logging.NewComponentLogger(logger, "credits"),
	}
}

// Credit resolves and renders a credit list.
func (r *Resolver) Credit(ctx context.Context, entries []Entry, releaseDate string) (string, error) {
	nodes, err := r.Resolve(ctx, entries, releaseDate)
	if err != nil {
		return "", err
	}
	return Render(nodes), nil
}

// Resolve builds the top-level nodes of a credit list in input order. Groups
// collect the entries that follow them; characters carry their voicing person;
// groups left without members are filled from the cache or the directory,
// keeping members active on releaseDate. Enrichment failures only cost display
// detail; the error return is reserved for context cancellation.
func (r *Resolver) Resolve(ctx context.Context, entries []Entry, releaseDate string) ([]*Node, error) {
	classified := Classify(entries)
	var tree treeBuilder

	for _, credit := range classified.Credits {
		switch credit.Role {
		case RoleGroup:
			tree.openGroup(&Node{
				ID:       credit.ID,
				Name:     textutil.EscapeArtist(credit.Name),
				Role:     RoleGroup,
				Children: []*Node{},
			})
		case RoleCharacter:
			node, err := r.characterNode(ctx, credit, classified.Persons)
			if err != nil {
				return nil, err
			}
			tree.attach(node)
		case RolePerson:
			if credit.Consumed {
				continue
			}
			tree.attach(leafNode(credit.Entry))
		default:
			tree.attach(leafNode(credit.Entry))
		}
	}

	for _, group := range tree.memberlessGroups() {
		if err := r.fillGroup(ctx, group, releaseDate); err != nil {
			return nil, err
		}
	}
	return tree.roots, nil
}

func leafNode(entry Entry) *Node {
	return &Node{ID: entry.ID, Name: textutil.EscapeArtist(entry.Name), Role: entry.Role}
}

func (r *Resolver) characterNode(ctx context.Context, credit *Credit, persons []*Credit) (*Node, error) {
	paired, hasPair := PairByPosition(credit.Ordinal, persons)

	var person string
	if cached, ok := r.cache.Character(credit.Name); ok {
		person = cached
	} else if hasPair {
		person = paired.Name
		r.cache.StoreCharacter(credit.Name, person)
	} else {
		r.logger.Info("character has no credited person, asking musicbrainz",
			logging.String("character", credit.Name),
			logging.String(logging.FieldArtistID, credit.ID))
		var err error
		if person, err = r.voiceActor(ctx, credit.Entry); err != nil {
			return nil, err
		}
	}
	// The positional person is merged into the character even when the name
	// came from the cache, so it never shows up as a separate artist.
	if hasPair {
		paired.Consumed = true
	}

	return &Node{ID: credit.ID, Name: characterDisplayName(credit.Name, person), Role: RoleCharacter}, nil
}

// voiceActor looks up and caches the person voicing a character. A missing or
// failed lookup yields "".
func (r *Resolver) voiceActor(ctx context.Context, character Entry) (string, error) {
	if r.directory == nil {
		return "", nil
	}
	actor, err := r.directory.VoiceActor(ctx, character.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, services.ErrNotFound) {
			r.logger.Info("no voice actor for character",
				logging.String("character", character.Name),
				logging.String(logging.FieldArtistID, character.ID))
			return "", nil
		}
		logging.WarnWithContext(r.logger, "voice actor lookup failed", "voice_actor_lookup_failed",
			logging.Error(err),
			logging.String("character", character.Name),
			logging.String(logging.FieldArtistID, character.ID),
			logging.String(logging.FieldErrorHint, services.Hint(err)),
			logging.String(logging.FieldImpact, "character is credited without a voice actor"))
		return "", nil
	}
	if actor.Name == "" {
		return "", nil
	}
	r.logger.Info("resolved voice actor",
		logging.String("character", character.Name),
		logging.String("person", actor.Name))
	r.cache.StoreCharacter(character.Name, actor.Name)
	return actor.Name, nil
}

func (r *Resolver) fillGroup(ctx context.Context, group *Node, releaseDate string) error {
	if cached, ok := r.cache.Group(group.Name); ok {
		group.Children = membersToNodes(cached)
		return nil
	}
	if r.directory == nil {
		return nil
	}

	r.logger.Info("group has no credited members, asking musicbrainz",
		logging.String("group", group.Name),
		logging.String(logging.FieldArtistID, group.ID))
	members, err := r.directory.GroupMembers(ctx, group.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logging.WarnWithContext(r.logger, "group member lookup failed", "group_members_lookup_failed",
			logging.Error(err),
			logging.String("group", group.Name),
			logging.String(logging.FieldArtistID, group.ID),
			logging.String(logging.FieldErrorHint, services.Hint(err)),
			logging.String(logging.FieldImpact, "group is credited without members"))
		return nil
	}

	resolved := make([]artistcache.Member, 0, len(members))
	for _, member := range members {
		if !MemberActive(member.Begin, member.End, releaseDate) {
			r.logger.Info("ignoring member outside release window",
				logging.String("group", group.Name),
				logging.String("member", member.Name),
				logging.String("begin", member.Begin),
				logging.String("end", member.End),
				logging.String("release_date", releaseDate))
			continue
		}
		name := textutil.EscapeArtist(member.Name)
		if member.Role == RoleCharacter {
			person, ok := r.cache.Character(member.Name)
			if !ok {
				if person, err = r.voiceActor(ctx, member.Entry); err != nil {
					return err
				}
			}
			name = characterDisplayName(member.Name, person)
		}
		resolved = append(resolved, artistcache.Member{ID: member.ID, Name: name})
	}

	if !r.cache.StoreGroup(group.Name, resolved) {
		resolved, _ = r.cache.Group(group.Name)
	}
	group.Children = membersToNodes(resolved)
	return nil
}

func membersToNodes(members []artistcache.Member) []*Node {
	nodes := make([]*Node, 0, len(members))
	for _, member := range members {
		nodes = append(nodes, &Node{ID: member.ID, Name: member.Name})
	}
	return nodes
}
