package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/unionfind"
)

// BenchmarkUnionConnected performs n random unions followed by n random
// queries on a 1e5-element structure.
func BenchmarkUnionConnected(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	ps := make([]int, n)
	qs := make([]int, n)
	for i := range ps {
		ps[i], qs[i] = r.Intn(n), r.Intn(n)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf, _ := unionfind.New(n)
		for k := 0; k < n; k++ {
			_ = uf.Union(ps[k], qs[k])
		}
		for k := 0; k < n; k++ {
			_, _ = uf.Connected(qs[k], ps[k])
		}
	}
}
