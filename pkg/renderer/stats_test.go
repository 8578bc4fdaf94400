package renderer

import (
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-pathtracer/pkg/core"
)

func TestIncrementalMeanMatchesBatchMean(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 10, 1000} {
		var stats PixelStats
		sum := core.Vec3{}
		for i := 0; i < n; i++ {
			s := core.NewVec3(random.Float64()*10, random.Float64(), random.Float64()*100)
			stats.AddSample(s)
			sum = sum.Add(s)
		}
		batch := sum.Multiply(1 / float64(n))

		if stats.SampleCount != n {
			t.Errorf("n=%d: expected %d samples, got %d", n, n, stats.SampleCount)
		}
		if diff := stats.GetColor().Subtract(batch).Length(); diff > 1e-9*batch.Length() {
			t.Errorf("n=%d: incremental mean %v differs from batch mean %v", n, stats.GetColor(), batch)
		}
	}
}

func TestFirstSampleIsTheMean(t *testing.T) {
	var stats PixelStats
	stats.AddSample(core.NewVec3(0.25, 0.5, 0.75))
	if stats.GetColor() != core.NewVec3(0.25, 0.5, 0.75) {
		t.Errorf("Expected the single sample, got %v", stats.GetColor())
	}
}
