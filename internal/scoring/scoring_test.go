package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"titanpc-store/internal/model"
)

func bench(fps1080, fps1440, fps4k, ppf float64) model.BenchmarkRecord {
	return model.BenchmarkRecord{
		Gaming:     model.GamingMetrics{FPS1080p: fps1080, FPS1440p: fps1440, FPS4K: fps4k},
		Efficiency: model.Efficiency{PricePerFPS1440p: ppf},
	}
}

func TestPerformanceScoreBounds(t *testing.T) {
	cases := []model.BenchmarkRecord{
		bench(0, 0, 0, 0),
		bench(60, 45, 20, 0),
		bench(144, 95, 48, 0),
		bench(260, 210, 135, 0),
		bench(1000, 1000, 1000, 0), // muy por encima del techo
	}
	for _, b := range cases {
		got := PerformanceScore(b)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestPerformanceScoreWeighting(t *testing.T) {
	// 0.3*120 + 0.5*180 + 0.2*90 = 144; 144/180 = 0.8
	b := bench(120, 180, 90, 0)
	assert.Equal(t, 80, PerformanceScore(b))
}

func TestPerformanceScoreZeroRecord(t *testing.T) {
	assert.Equal(t, 0, PerformanceScore(model.BenchmarkRecord{}))
}

func TestValueScoreReferencePoints(t *testing.T) {
	// 7 €/FPS → 100, 25 €/FPS → 0, 16 €/FPS → 50
	assert.Equal(t, 100, ValueScore(bench(0, 0, 0, 7), 0))
	assert.Equal(t, 0, ValueScore(bench(0, 0, 0, 25), 0))
	assert.Equal(t, 50, ValueScore(bench(0, 0, 0, 16), 0))
}

func TestValueScoreZeroRatioIsBest(t *testing.T) {
	assert.Equal(t, 100, ValueScore(bench(0, 0, 0, 0), 0))
}

func TestValueScoreIgnoresPriceParameter(t *testing.T) {
	b := bench(0, 150, 0, 12)
	assert.Equal(t, ValueScore(b, 100), ValueScore(b, 9999))
}

func TestFeaturesScore(t *testing.T) {
	b := model.BenchmarkRecord{Features: model.FeatureRatings{
		Cooling: 80, BuildQuality: 80, Upgradability: 60, Aesthetics: 60, FutureProof: 70,
	}}
	// 80*.25 + 80*.25 + 60*.15 + 60*.15 + 70*.20 = 72
	assert.Equal(t, 72, FeaturesScore(b))
}

func TestGlobalScoreAllZero(t *testing.T) {
	// Registro a cero: rendimiento 0, características 0, pero valor 100
	// (ratio 0 es el mejor caso). Global = 100*0.35 = 35.
	assert.Equal(t, 35, GlobalScore(model.BenchmarkRecord{}, 0))
}

func TestGlobalScoreComposition(t *testing.T) {
	b := model.BenchmarkRecord{
		Gaming:     model.GamingMetrics{FPS1080p: 120, FPS1440p: 180, FPS4K: 90}, // perf 80
		Efficiency: model.Efficiency{PricePerFPS1440p: 16},                       // value 50
		Features: model.FeatureRatings{
			Cooling: 80, BuildQuality: 80, Upgradability: 60, Aesthetics: 60, FutureProof: 70, // features 72
		},
	}
	// 80*.40 + 50*.35 + 72*.25 = 32 + 17.5 + 18 = 67.5 → 68
	assert.Equal(t, 68, GlobalScore(b, 2000))
}
