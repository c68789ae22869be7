package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/delve/pathfind"
	"github.com/katalvlaran/delve/tilegrid"
)

// benchGrid is a 200×200 grid with 20% scattered walls and open corners.
func benchGrid(b *testing.B) *pathfind.Pathfinder {
	rng := rand.New(rand.NewSource(1))
	g := randomGrid(b, rng, 200, 200, 0.2)
	g.SetTile(0, 0, 0)
	g.SetTile(199, 199, 0)
	return newPF(b, g)
}

func BenchmarkSearches(b *testing.B) {
	pf := benchGrid(b)
	a, z := tilegrid.Pt(0, 0), tilegrid.Pt(199, 199)
	for name, search := range searches {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = search(pf, a, z, tilegrid.Conn8)
			}
		})
	}
}

func BenchmarkFindAllReachable(b *testing.B) {
	pf := benchGrid(b)
	for i := 0; i < b.N; i++ {
		_ = pf.FindAllReachable(tilegrid.Pt(0, 0), 50, tilegrid.Conn8)
	}
}
