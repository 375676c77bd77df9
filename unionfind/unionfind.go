package unionfind

import "fmt"

// UnionFind is a disjoint-set forest stored as parent indices.
// parent[i] == i marks i as a root.
type UnionFind struct {
	parent []int
	count  int
}

// New returns a UnionFind over n elements, each in its own set.
// n == 0 yields a valid empty structure; n < 0 returns ErrInvalidSize.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("unionfind: New(%d): %w", n, ErrInvalidSize)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{parent: parent, count: n}, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Root returns the representative of the set containing i.
// The walk is iterative; each visited element is re-pointed at its
// grandparent (path halving).
func (uf *UnionFind) Root(i int) (int, error) {
	if err := uf.check(i); err != nil {
		return 0, err
	}
	for i != uf.parent[i] {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i, nil
}

// Connected reports whether p and q are in the same set.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	rp, err := uf.Root(p)
	if err != nil {
		return false, err
	}
	rq, err := uf.Root(q)
	if err != nil {
		return false, err
	}

	return rp == rq, nil
}

// Union merges the sets containing p and q by attaching root(p) under root(q).
// Unioning two already-connected elements is a no-op.
func (uf *UnionFind) Union(p, q int) error {
	rp, err := uf.Root(p)
	if err != nil {
		return err
	}
	rq, err := uf.Root(q)
	if err != nil {
		return err
	}
	if rp == rq {
		return nil
	}
	uf.parent[rp] = rq
	uf.count--

	return nil
}

func (uf *UnionFind) check(i int) error {
	if i < 0 || i >= len(uf.parent) {
		return &IndexError{Index: i, Size: len(uf.parent)}
	}

	return nil
}
