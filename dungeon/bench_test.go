package dungeon_test

import (
	"testing"

	"github.com/katalvlaran/delve/dungeon"
)

// BenchmarkGenerate measures one 200×120 level per algorithm.
func BenchmarkGenerate(b *testing.B) {
	for _, algo := range dungeon.Algorithms {
		b.Run(string(algo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := dungeon.Generate(200, 120, int64(i), dungeon.WithAlgorithm(algo)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
