package visibility_test

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkComputeFOV(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := open(b, 200, 200)
	for i := 0; i < 200*200/10; i++ {
		g.SetTile(rng.Intn(200), rng.Intn(200), 1)
	}
	g.SetTile(100, 100, 0)
	v := newVis(b, g)
	for _, r := range []int{8, 20, 60} {
		b.Run(fmt.Sprintf("r%d", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = v.ComputeFOV(100, 100, r)
			}
		})
	}
}
