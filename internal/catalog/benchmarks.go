// benchmarks.go
package catalog

import "titanpc-store/internal/model"

// Tabla de benchmarks, 1:1 opcional con el catálogo por id de producto.
// Un producto sin entrada aquí simplemente no aparece en las vistas de
// comparación avanzada.
var benchmarks = map[string]model.BenchmarkRecord{
	"titan-starter": {
		ProductID: "titan-starter",
		Gaming:    model.GamingMetrics{FPS1080p: 144, FPS1440p: 95, FPS4K: 48},
		Synthetic: model.SyntheticScores{TimeSpy: 10500, FireStrike: 24800, CinebenchR23: 11200},
		Efficiency: model.Efficiency{
			PricePerFPS1440p: 9.5,
			PowerDraw:        320,
			Thermals:         78,
		},
		Features: model.FeatureRatings{
			Cooling: 65, BuildQuality: 70, Upgradability: 80, Aesthetics: 60, FutureProof: 55,
		},
		UseCases: model.UseCaseScores{Gaming: 72, Streaming: 55, Editing: 48, Work: 80},
	},
	"titan-advance": {
		ProductID: "titan-advance",
		Gaming:    model.GamingMetrics{FPS1080p: 190, FPS1440p: 140, FPS4K: 75},
		Synthetic: model.SyntheticScores{TimeSpy: 17800, FireStrike: 38500, CinebenchR23: 18900},
		Efficiency: model.Efficiency{
			PricePerFPS1440p: 10.0,
			PowerDraw:        450,
			Thermals:         82,
		},
		Features: model.FeatureRatings{
			Cooling: 80, BuildQuality: 80, Upgradability: 85, Aesthetics: 75, FutureProof: 75,
		},
		UseCases: model.UseCaseScores{Gaming: 85, Streaming: 75, Editing: 70, Work: 88},
	},
	"titan-pro": {
		ProductID: "titan-pro",
		Gaming:    model.GamingMetrics{FPS1080p: 230, FPS1440p: 175, FPS4K: 105},
		Synthetic: model.SyntheticScores{TimeSpy: 24500, FireStrike: 48200, CinebenchR23: 30500},
		Efficiency: model.Efficiency{
			PricePerFPS1440p: 13.1,
			PowerDraw:        580,
			Thermals:         85,
		},
		Features: model.FeatureRatings{
			Cooling: 90, BuildQuality: 88, Upgradability: 85, Aesthetics: 85, FutureProof: 85,
		},
		UseCases: model.UseCaseScores{Gaming: 94, Streaming: 88, Editing: 85, Work: 92},
	},
	"titan-ultra": {
		ProductID: "titan-ultra",
		Gaming:    model.GamingMetrics{FPS1080p: 260, FPS1440p: 210, FPS4K: 135},
		Synthetic: model.SyntheticScores{TimeSpy: 31200, FireStrike: 55600, CinebenchR23: 38200},
		Efficiency: model.Efficiency{
			PricePerFPS1440p: 16.7,
			PowerDraw:        720,
			Thermals:         88,
		},
		Features: model.FeatureRatings{
			Cooling: 95, BuildQuality: 95, Upgradability: 90, Aesthetics: 92, FutureProof: 95,
		},
		UseCases: model.UseCaseScores{Gaming: 99, Streaming: 96, Editing: 97, Work: 95},
	},
	"epical-creator": {
		ProductID: "epical-creator",
		Gaming:    model.GamingMetrics{FPS1080p: 225, FPS1440p: 170, FPS4K: 100},
		Synthetic: model.SyntheticScores{TimeSpy: 23900, FireStrike: 47100, CinebenchR23: 35800},
		Efficiency: model.Efficiency{
			PricePerFPS1440p: 16.5,
			PowerDraw:        640,
			Thermals:         80,
		},
		Features: model.FeatureRatings{
			Cooling: 85, BuildQuality: 90, Upgradability: 88, Aesthetics: 78, FutureProof: 88,
		},
		UseCases: model.UseCaseScores{Gaming: 90, Streaming: 95, Editing: 96, Work: 94},
	},
	"epical-compact": {
		ProductID: "epical-compact",
		Gaming:    model.GamingMetrics{FPS1080p: 200, FPS1440p: 150, FPS4K: 82},
		Synthetic: model.SyntheticScores{TimeSpy: 18900, FireStrike: 40100, CinebenchR23: 19800},
		Efficiency: model.Efficiency{
			PricePerFPS1440p: 10.7,
			PowerDraw:        430,
			Thermals:         72,
		},
		Features: model.FeatureRatings{
			Cooling: 70, BuildQuality: 85, Upgradability: 55, Aesthetics: 88, FutureProof: 70,
		},
		UseCases: model.UseCaseScores{Gaming: 88, Streaming: 72, Editing: 68, Work: 85},
	},
}

// BenchmarkFor devuelve el registro de benchmarks del producto, si existe.
func BenchmarkFor(productID string) (model.BenchmarkRecord, bool) {
	b, ok := benchmarks[productID]
	return b, ok
}
