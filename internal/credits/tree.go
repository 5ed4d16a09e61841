package credits

// Node is one artist of a resolved credit. Names are already escaped. Only
// Group nodes carry children.
type Node struct {
	ID       string
	Name     string
	Role     Role
	Children []*Node
}

// treeBuilder appends nodes either to the open group or to the top level.
type treeBuilder struct {
	roots  []*Node
	target *Node
}

// openGroup emits a top-level group and makes it the attachment target until
// the next group.
func (b *treeBuilder) openGroup(node *Node) {
	b.roots = append(b.roots, node)
	b.target = node
}

func (b *treeBuilder) attach(node *Node) {
	if b.target != nil {
		b.target.Children = append(b.target.Children, node)
		return
	}
	b.roots = append(b.roots, node)
}

// memberlessGroups returns top-level groups that received no members from the
// credit list itself.
func (b *treeBuilder) memberlessGroups() []*Node {
	var groups []*Node
	for _, node := range b.roots {
		if node.Role == RoleGroup && len(node.Children) == 0 {
			groups = append(groups, node)
		}
	}
	return groups
}
