package unionfind

// QuickFind keeps a flat component id per site. Find is O(1); Union rewrites
// the whole array and is O(N).
type QuickFind struct {
	id    []int
	count int
}

// NewQuickFind creates a QuickFind over n singleton sites.
func NewQuickFind(n int) (*QuickFind, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return &QuickFind{
		id:    identity(n),
		count: n,
	}, nil
}

// Find returns the component id of p.
func (uf *QuickFind) Find(p int) (int, error) {
	if err := checkSite(p, len(uf.id)); err != nil {
		return 0, err
	}
	return uf.id[p], nil
}

// Connected checks if p and q share a component id.
func (uf *QuickFind) Connected(p, q int) (bool, error) {
	pID, err := uf.Find(p)
	if err != nil {
		return false, err
	}
	qID, err := uf.Find(q)
	if err != nil {
		return false, err
	}
	return pID == qID, nil
}

// Union relabels every site of p's component with q's component id.
func (uf *QuickFind) Union(p, q int) error {
	pID, err := uf.Find(p)
	if err != nil {
		return err
	}
	qID, err := uf.Find(q)
	if err != nil {
		return err
	}
	if pID == qID {
		return nil
	}

	for i := range uf.id {
		if uf.id[i] == pID {
			uf.id[i] = qID
		}
	}
	uf.count--
	return nil
}

// Count returns the number of components.
func (uf *QuickFind) Count() int {
	return uf.count
}

// Size returns the number of sites.
func (uf *QuickFind) Size() int {
	return len(uf.id)
}
