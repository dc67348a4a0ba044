package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanpc-store/internal/model"
)

func producto(id string, price, rating float64, inStock bool, specs ...string) model.Product {
	return model.Product{ID: id, Name: id, Price: price, Rating: rating, InStock: inStock, Specs: specs}
}

func TestCompareSpecsEmpty(t *testing.T) {
	assert.Empty(t, CompareSpecs(nil))
	assert.Empty(t, CompareSpecs([]model.Product{}))
}

func TestCompareSpecsClassification(t *testing.T) {
	a := producto("a", 1000, 4, true,
		"GPU NVIDIA GeForce RTX 4070 12GB",
		"CPU AMD Ryzen 7 7700",
		"32GB DDR5 6000MHz RAM",
		"SSD NVMe 2TB",
		"Fuente 750W 80+ Gold",
		"Refrigeración líquida 240mm",
	)

	rows := CompareSpecs([]model.Product{a})
	require.Len(t, rows, 6)

	cats := make([]string, 0, len(rows))
	for _, r := range rows {
		cats = append(cats, r.Category)
	}
	// Orden de primera aparición, no alfabético.
	assert.Equal(t, []string{"GPU", "CPU", "RAM", "Almacenamiento", "Fuente", "Refrigeración"}, cats)
	assert.Equal(t, "GPU NVIDIA GeForce RTX 4070 12GB", rows[0].Products["a"])
}

func TestCompareSpecsMissingCategory(t *testing.T) {
	a := producto("a", 1000, 4, true, "GPU RTX 4060", "CPU Ryzen 5 5600")
	b := producto("b", 2000, 5, true, "GPU RTX 4080")

	rows := CompareSpecs([]model.Product{a, b})
	require.Len(t, rows, 2)

	cpu := rows[1]
	assert.Equal(t, "CPU", cpu.Category)
	assert.Contains(t, cpu.Products, "a")
	// b no tiene spec de CPU: sin entrada en la fila.
	assert.NotContains(t, cpu.Products, "b")
}

func TestCompareSpecsUnknownGoesToOther(t *testing.T) {
	a := producto("a", 500, 3, true, "Chasis de cristal templado")
	rows := CompareSpecs([]model.Product{a})
	require.Len(t, rows, 1)
	assert.Equal(t, "Otros", rows[0].Category)
}

func TestBestInCategoryPrice(t *testing.T) {
	ps := []model.Product{
		producto("caro", 2800, 4.8, true),
		producto("barato", 900, 4.0, true),
		producto("medio", 2300, 4.6, true),
	}
	best := BestInCategory(ps, MetricPrice)
	require.NotNil(t, best)
	assert.Equal(t, "barato", best.ID)
}

func TestBestInCategoryPriceTieKeepsFirst(t *testing.T) {
	ps := []model.Product{
		producto("primero", 1500, 4.0, true),
		producto("segundo", 1500, 4.9, true),
	}
	best := BestInCategory(ps, MetricPrice)
	require.NotNil(t, best)
	assert.Equal(t, "primero", best.ID)
}

func TestBestInCategoryPerformanceUsesRating(t *testing.T) {
	// Los FPS de benchmark no intervienen: gana el rating grueso del catálogo.
	ps := []model.Product{
		producto("a", 2300, 4.3, true), // 150 FPS en 1440p en la tabla de benchmarks
		producto("b", 2800, 4.9, true), // 175 FPS
		producto("c", 900, 4.1, true),  // 90 FPS
	}
	best := BestInCategory(ps, MetricPerformance)
	require.NotNil(t, best)
	assert.Equal(t, "b", best.ID)
}

func TestBestInCategoryValue(t *testing.T) {
	ps := []model.Product{
		producto("a", 2000, 4.0, true), // 0.0020
		producto("b", 900, 4.0, true),  // 0.0044
		producto("c", 3000, 4.9, true), // 0.0016
	}
	best := BestInCategory(ps, MetricValue)
	require.NotNil(t, best)
	assert.Equal(t, "b", best.ID)
}

func TestBestInCategoryEmpty(t *testing.T) {
	assert.Nil(t, BestInCategory(nil, MetricPrice))
}

func TestQuickScoreComponents(t *testing.T) {
	// precio 900 → 70; rating 1 → 20; en stock → 10; sin specs → 0. Total 100.
	p := producto("a", 900, 1, true)
	assert.Equal(t, 100, QuickScore(p))

	// Sin stock y caro: 100−3000/30 = 0; rating 2 → 40; 3 specs → 6. Total 46.
	q := producto("b", 3000, 2, false, "s1", "s2", "s3")
	assert.Equal(t, 46, QuickScore(q))
}

func TestQuickScoreClamped(t *testing.T) {
	p := producto("a", 0, 5, true, "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11")
	got := QuickScore(p)
	assert.LessOrEqual(t, got, 100)
	assert.GreaterOrEqual(t, got, 0)
}
