package domain

import "sort"

// GroupTree is an id-indexed arena over one company's groups.
// Parent links are keys into the same arena; walks are explicit.
type GroupTree struct {
	nodes    map[string]Group
	children map[string][]string
	roots    []string
}

// GroupNode is a group with its nested sub-groups, used for rendering.
type GroupNode struct {
	Group
	Children []GroupNode `json:"children"`
}

// NewGroupTree indexes groups by id. A group whose parent is not in the set is treated as a root.
func NewGroupTree(groups []Group) *GroupTree {
	t := &GroupTree{
		nodes:    make(map[string]Group, len(groups)),
		children: make(map[string][]string),
	}
	for _, g := range groups {
		t.nodes[g.GroupID] = g
	}
	for _, g := range groups {
		if g.IsTopLevel() {
			t.roots = append(t.roots, g.GroupID)
			continue
		}
		if _, ok := t.nodes[*g.ParentGroupID]; !ok {
			t.roots = append(t.roots, g.GroupID)
			continue
		}
		t.children[*g.ParentGroupID] = append(t.children[*g.ParentGroupID], g.GroupID)
	}
	t.sortIDs(t.roots)
	for id := range t.children {
		t.sortIDs(t.children[id])
	}
	return t
}

func (t *GroupTree) sortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := t.nodes[ids[i]], t.nodes[ids[j]]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.GroupName < b.GroupName
	})
}

func (t *GroupTree) Get(id string) (Group, bool) {
	g, ok := t.nodes[id]
	return g, ok
}

// Descendants returns every group below id, breadth first.
func (t *GroupTree) Descendants(id string) []Group {
	var out []Group
	seen := map[string]bool{id: true}
	queue := append([]string(nil), t.children[id]...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, t.nodes[next])
		queue = append(queue, t.children[next]...)
	}
	return out
}

// WouldCreateCycle reports whether making parentID the parent of id would put id under itself.
func (t *GroupTree) WouldCreateCycle(id, parentID string) bool {
	if id == parentID {
		return true
	}
	for _, d := range t.Descendants(id) {
		if d.GroupID == parentID {
			return true
		}
	}
	return false
}

// Nested renders the arena as nested nodes starting from the roots.
func (t *GroupTree) Nested() []GroupNode {
	seen := make(map[string]bool, len(t.nodes))
	return t.nest(t.roots, seen)
}

func (t *GroupTree) nest(ids []string, seen map[string]bool) []GroupNode {
	nodes := make([]GroupNode, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		nodes = append(nodes, GroupNode{
			Group:    t.nodes[id],
			Children: t.nest(t.children[id], seen),
		})
	}
	return nodes
}
