package unionfind

import "sync"

type synchronized struct {
	uf   UnionFind
	lock sync.Mutex
}

// Synchronized returns a UnionFind that serializes every call to uf behind one
// mutex. Find mutates tree variants, so reads take the same exclusive lock as
// writes. uf must not be used directly afterwards.
func Synchronized(uf UnionFind) UnionFind {
	return &synchronized{uf: uf}
}

func (s *synchronized) Find(p int) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.uf.Find(p)
}

func (s *synchronized) Connected(p, q int) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.uf.Connected(p, q)
}

func (s *synchronized) Union(p, q int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.uf.Union(p, q)
}

func (s *synchronized) Count() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.uf.Count()
}

// Size is fixed at construction and needs no lock.
func (s *synchronized) Size() int {
	return s.uf.Size()
}
