// Package scoring calcula puntuaciones normalizadas 0–100 a partir de un
// registro de benchmarks. Todas las funciones son puras y totales: cualquier
// BenchmarkRecord sintácticamente válido produce un resultado.
//
// No confundir con compare.QuickScore: aquel es una heurística gruesa de
// catálogo sobre precio/rating/stock; estas puntuaciones salen de los
// benchmarks medidos.
package scoring

import (
	"math"

	"titanpc-store/internal/model"
)

// Techo de FPS de referencia para normalizar el score de rendimiento.
const referenceFPSCeiling = 180

// Pesos por resolución: 1440p es la resolución representativa y domina.
const (
	weight1080p = 0.3
	weight1440p = 0.5
	weight4K    = 0.2
)

// Pesos del score de características.
const (
	weightCooling      = 0.25
	weightBuildQuality = 0.25
	weightUpgradable   = 0.15
	weightAesthetics   = 0.15
	weightFutureProof  = 0.20
)

// Pesos del score global.
const (
	weightPerformance = 0.40
	weightValue       = 0.35
	weightFeatures    = 0.25
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PerformanceScore pondera los FPS a tres resoluciones y los normaliza contra
// el techo de referencia. Resultado en [0,100], redondeado.
func PerformanceScore(b model.BenchmarkRecord) int {
	weighted := b.Gaming.FPS1080p*weight1080p +
		b.Gaming.FPS1440p*weight1440p +
		b.Gaming.FPS4K*weight4K
	return int(math.Round(clamp01(weighted/referenceFPSCeiling) * 100))
}

// ValueScore puntúa el €/FPS a 1440p de forma lineal inversa: 7 €/FPS o menos
// vale 100, 25 €/FPS o más vale 0. Un ratio de 0 (sin coste por FPS) es el
// mejor caso posible y devuelve 100.
//
// Nota: el parámetro price no interviene en el cálculo; el ratio sale del
// campo precalculado del benchmark. Se conserva la firma por compatibilidad
// con los llamadores existentes.
func ValueScore(b model.BenchmarkRecord, price float64) int {
	_ = price
	ppf := b.Efficiency.PricePerFPS1440p
	return int(math.Round(clamp01((25-ppf)/18) * 100))
}

// FeaturesScore es la suma ponderada de las cinco valoraciones 0–100.
func FeaturesScore(b model.BenchmarkRecord) int {
	f := b.Features
	weighted := f.Cooling*weightCooling +
		f.BuildQuality*weightBuildQuality +
		f.Upgradability*weightUpgradable +
		f.Aesthetics*weightAesthetics +
		f.FutureProof*weightFutureProof
	return int(math.Round(weighted))
}

// GlobalScore combina rendimiento, valor y características.
func GlobalScore(b model.BenchmarkRecord, price float64) int {
	perf := float64(PerformanceScore(b))
	value := float64(ValueScore(b, price))
	features := float64(FeaturesScore(b))
	return int(math.Round(perf*weightPerformance + value*weightValue + features*weightFeatures))
}
