package unionfind

// WeightedQuickUnion is a quick-union forest that always hangs the smaller
// tree under the larger one and compresses paths on every lookup. Tree depth
// never exceeds floor(log2 N), and amortized cost per operation is nearly
// constant.
type WeightedQuickUnion struct {
	parent []int
	size   []int // only valid at roots
	count  int
}

// NewWeightedQuickUnion creates a WeightedQuickUnion over n singleton sites.
func NewWeightedQuickUnion(n int) (*WeightedQuickUnion, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}
	return &WeightedQuickUnion{
		parent: identity(n),
		size:   size,
		count:  n,
	}, nil
}

// Root returns the root of i. Every node visited on the way up is spliced to
// point at its grandparent until its parent is the root.
func (uf *WeightedQuickUnion) Root(i int) (int, error) {
	if err := checkSite(i, len(uf.parent)); err != nil {
		return 0, err
	}
	for i != uf.parent[i] {
		for uf.parent[i] != uf.parent[uf.parent[i]] {
			uf.parent[i] = uf.parent[uf.parent[i]]
		}
		i = uf.parent[i]
	}
	return i, nil
}

// Find returns the root of p.
func (uf *WeightedQuickUnion) Find(p int) (int, error) {
	return uf.Root(p)
}

// Connected checks if p and q share a root.
func (uf *WeightedQuickUnion) Connected(p, q int) (bool, error) {
	pRoot, qRoot, err := uf.roots(p, q)
	if err != nil {
		return false, err
	}
	return pRoot == qRoot, nil
}

// Union merges the trees of p and q, smaller under larger. On a tie q's root
// goes under p's root.
func (uf *WeightedQuickUnion) Union(p, q int) error {
	pRoot, qRoot, err := uf.roots(p, q)
	if err != nil {
		return err
	}
	if pRoot == qRoot {
		return nil
	}

	if uf.size[pRoot] < uf.size[qRoot] {
		uf.parent[pRoot] = qRoot
		uf.size[qRoot] += uf.size[pRoot]
	} else {
		uf.parent[qRoot] = pRoot
		uf.size[pRoot] += uf.size[qRoot]
	}
	uf.count--
	return nil
}

// Count returns the number of components.
func (uf *WeightedQuickUnion) Count() int {
	return uf.count
}

// Size returns the number of sites.
func (uf *WeightedQuickUnion) Size() int {
	return len(uf.parent)
}

// ComponentSize returns the number of sites in p's component.
func (uf *WeightedQuickUnion) ComponentSize(p int) (int, error) {
	root, err := uf.Root(p)
	if err != nil {
		return 0, err
	}
	return uf.size[root], nil
}

func (uf *WeightedQuickUnion) roots(p, q int) (int, int, error) {
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
