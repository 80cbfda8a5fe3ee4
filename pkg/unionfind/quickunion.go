package unionfind

// QuickUnion keeps a forest of parent links where parent[i] == i marks a root.
// Trees are never balanced, so a chain of unions makes Root O(N).
type QuickUnion struct {
	parent []int
	count  int
}

// NewQuickUnion creates a QuickUnion over n singleton sites.
func NewQuickUnion(n int) (*QuickUnion, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return &QuickUnion{
		parent: identity(n),
		count:  n,
	}, nil
}

// Root follows parent links from i up to its root.
func (uf *QuickUnion) Root(i int) (int, error) {
	if err := checkSite(i, len(uf.parent)); err != nil {
		return 0, err
	}
	for i != uf.parent[i] {
		i = uf.parent[i]
	}
	return i, nil
}

// Find returns the root of p.
func (uf *QuickUnion) Find(p int) (int, error) {
	return uf.Root(p)
}

// Connected checks if p and q share a root.
func (uf *QuickUnion) Connected(p, q int) (bool, error) {
	pRoot, qRoot, err := uf.roots(p, q)
	if err != nil {
		return false, err
	}
	return pRoot == qRoot, nil
}

// Union attaches p's root under q's root.
func (uf *QuickUnion) Union(p, q int) error {
	pRoot, qRoot, err := uf.roots(p, q)
	if err != nil {
		return err
	}
	if pRoot == qRoot {
		return nil
	}

	// Only roots are re-parented, so the forest stays acyclic.
	uf.parent[pRoot] = qRoot
	uf.count--
	return nil
}

// Count returns the number of components.
func (uf *QuickUnion) Count() int {
	return uf.count
}

// Size returns the number of sites.
func (uf *QuickUnion) Size() int {
	return len(uf.parent)
}

func (uf *QuickUnion) roots(p, q int) (int, int, error) {
	pRoot, err := uf.Root(p)
	if err != nil {
		return 0, 0, err
	}
	qRoot, err := uf.Root(q)
	if err != nil {
		return 0, 0, err
	}
	return pRoot, qRoot, nil
}
