// Package compare implementa la comparativa lado a lado de hasta 3 equipos:
// agrupación de specs por categoría, mejor producto por métrica y la
// heurística rápida de catálogo.
package compare

import (
	"math"
	"strings"

	"titanpc-store/internal/model"
)

// MaxProducts es el tamaño máximo de una selección de comparación.
const MaxProducts = 3

// SpecRow es una fila de la tabla comparativa: una categoría y el spec de
// cada producto que tiene entrada en ella. Un producto sin spec de esa
// categoría no aparece en el mapa (el renderizado pinta un guion).
type SpecRow struct {
	Category string            `json:"category"`
	Products map[string]string `json:"products"` // productId -> spec textual
}

type keywordRule struct {
	category string
	match    func(spec string) bool
}

func anyOf(words ...string) func(string) bool {
	return func(spec string) bool {
		for _, w := range words {
			if strings.Contains(spec, w) {
				return true
			}
		}
		return false
	}
}

// Las reglas se evalúan en orden; gana la primera que casa. "w" (vatios) va
// en PSU detrás de RAM y almacenamiento para no capturar specs ajenos.
var specRules = []keywordRule{
	{"GPU", anyOf("rtx", "gtx", "gpu")},
	{"CPU", anyOf("ryzen", "intel", "cpu", "procesador")},
	{"RAM", func(spec string) bool {
		return strings.Contains(spec, "gb") &&
			(strings.Contains(spec, "ddr") || strings.Contains(spec, "ram"))
	}},
	{"Almacenamiento", anyOf("ssd", "hdd", "nvme", "almacenamiento")},
	{"Fuente", anyOf("fuente", "psu", "w")},
	{"Refrigeración", anyOf("refrigeración", "cooler")},
}

const categoryOther = "Otros"

func classify(spec string) string {
	lower := strings.ToLower(spec)
	for _, r := range specRules {
		if r.match(lower) {
			return r.category
		}
	}
	return categoryOther
}

// CompareSpecs agrupa los specs de texto libre de cada producto por
// categoría. El orden de las filas es el orden de primera aparición de cada
// categoría al recorrer los productos, no alfabético. Un producto aporta como
// máximo un spec por categoría (gana el primero).
func CompareSpecs(products []model.Product) []SpecRow {
	rows := []SpecRow{}
	index := map[string]int{}

	for _, p := range products {
		for _, spec := range p.Specs {
			cat := classify(spec)
			i, seen := index[cat]
			if !seen {
				index[cat] = len(rows)
				rows = append(rows, SpecRow{Category: cat, Products: map[string]string{}})
				i = index[cat]
			}
			if _, dup := rows[i].Products[p.ID]; !dup {
				rows[i].Products[p.ID] = spec
			}
		}
	}
	return rows
}

// Métricas de BestInCategory.
const (
	MetricPrice       = "price"
	MetricPerformance = "performance"
	MetricValue       = "value"
)

// BestInCategory elige el mejor producto de la selección según la métrica:
// precio mínimo, rating máximo o rating/precio máximo. Los empates los gana
// el primer producto en orden de entrada. El rating usado es el campo grueso
// del catálogo, no los benchmarks.
func BestInCategory(products []model.Product, metric string) *model.Product {
	if len(products) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(products); i++ {
		switch metric {
		case MetricPrice:
			if products[i].Price < products[best].Price {
				best = i
			}
		case MetricPerformance:
			if products[i].Rating > products[best].Rating {
				best = i
			}
		case MetricValue:
			if valueRatio(products[i]) > valueRatio(products[best]) {
				best = i
			}
		}
	}
	p := products[best]
	return &p
}

func valueRatio(p model.Product) float64 {
	if p.Price == 0 {
		return 0
	}
	return p.Rating / p.Price
}

// QuickScore es la heurística rápida de catálogo: precio inverso, rating,
// stock y riqueza del listado de specs, recortada a [0,100]. Independiente
// del motor de scoring por benchmarks (paquete scoring); responden a
// preguntas distintas.
func QuickScore(p model.Product) int {
	score := math.Max(0, 100-p.Price/30)
	score += p.Rating * 20
	if p.InStock {
		score += 10
	}
	score += math.Min(20, float64(len(p.Specs))*2)

	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
