package tokens

import "github.com/xlab/treeprint"

// Tree renders the map as an ASCII tree rooted at title. Leaves are shown as
// "[key]  value" meta nodes, mappings as branches.
func Tree(m *Map, title string) treeprint.Tree {
	tree := treeprint.NewWithRoot(title)
	addBranch(tree, m)
	return tree
}

func addBranch(t treeprint.Tree, m *Map) {
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		if sub, ok := v.Map(); ok {
			addBranch(t.AddBranch(key), sub)
			continue
		}
		t.AddMetaNode(key, v.Text())
	}
}
