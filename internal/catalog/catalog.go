// Package catalog contiene el catálogo estático de equipos y sus benchmarks.
// Los datos son constantes de compilación: no hay ciclo de vida
// crear/actualizar/borrar en runtime.
package catalog

import (
	"errors"

	"titanpc-store/internal/model"
)

var ErrProductNotFound = errors.New("producto no encontrado")

// PriceFromMinorUnits convierte céntimos (como los guarda el backend de datos)
// a unidades decimales.
func PriceFromMinorUnits(cents int64) float64 {
	return float64(cents) / 100
}

var products = []model.Product{
	{
		ID:    "titan-starter",
		Slug:  "titan-starter",
		Name:  "TITAN Starter",
		Price: 899,
		Image: "/images/titan-starter.webp",
		Specs: []string{
			"GPU NVIDIA GeForce RTX 4060 8GB",
			"CPU AMD Ryzen 5 5600",
			"16GB DDR4 3200MHz RAM",
			"SSD NVMe 1TB",
			"Fuente 550W 80+ Bronze",
			"Refrigeración por aire Hyper 212",
		},
		Tag:     "Oferta",
		Rating:  4.2,
		InStock: true,
		Desc:    "Equipo de entrada para 1080p competitivo.",
	},
	{
		ID:    "titan-advance",
		Slug:  "titan-advance",
		Name:  "TITAN Advance",
		Price: 1399,
		Image: "/images/titan-advance.webp",
		Specs: []string{
			"GPU NVIDIA GeForce RTX 4070 SUPER 12GB",
			"CPU AMD Ryzen 7 7700",
			"32GB DDR5 6000MHz RAM",
			"SSD NVMe 2TB Gen4",
			"Fuente 750W 80+ Gold",
			"Refrigeración líquida 240mm",
		},
		Rating:  4.6,
		InStock: true,
		Desc:    "El equilibrio para 1440p a alta tasa de refresco.",
	},
	{
		ID:    "titan-pro",
		Slug:  "titan-pro",
		Name:  "TITAN Pro",
		Price: 2299,
		Image: "/images/titan-pro.webp",
		Specs: []string{
			"GPU NVIDIA GeForce RTX 4080 SUPER 16GB",
			"CPU Intel Core i7-14700K",
			"32GB DDR5 6400MHz RAM",
			"SSD NVMe 2TB Gen4",
			"Fuente 850W 80+ Gold",
			"Refrigeración líquida 360mm",
		},
		Tag:     "Más vendido",
		Rating:  4.8,
		InStock: true,
		Desc:    "1440p sin concesiones, 4K solvente.",
	},
	{
		ID:    "titan-ultra",
		Slug:  "titan-ultra",
		Name:  "TITAN Ultra",
		Price: 3499,
		Image: "/images/titan-ultra.webp",
		Specs: []string{
			"GPU NVIDIA GeForce RTX 4090 24GB",
			"CPU AMD Ryzen 9 7950X3D",
			"64GB DDR5 6000MHz RAM",
			"Almacenamiento 4TB NVMe Gen4",
			"Fuente 1000W 80+ Platinum",
			"Refrigeración líquida 360mm",
		},
		Tag:     "Tope de gama",
		Rating:  4.9,
		InStock: true,
		Desc:    "4K nativo y creación de contenido sin límites.",
	},
	{
		ID:    "epical-creator",
		Slug:  "epical-creator",
		Name:  "EPICAL Creator",
		Price: 2799,
		Image: "/images/epical-creator.webp",
		Specs: []string{
			"GPU NVIDIA GeForce RTX 4080 SUPER 16GB",
			"Procesador AMD Ryzen 9 7900X",
			"64GB DDR5 5600MHz RAM",
			"SSD NVMe 2TB + HDD 4TB",
			"Fuente 1000W 80+ Gold",
			"Refrigeración líquida 280mm",
		},
		Rating:  4.7,
		InStock: false,
		Desc:    "Pensado para edición y streaming simultáneo.",
	},
	{
		ID:    "epical-compact",
		Slug:  "epical-compact",
		Name:  "EPICAL Compact",
		Price: 1599,
		Image: "/images/epical-compact.webp",
		Specs: []string{
			"GPU NVIDIA GeForce RTX 4070 12GB",
			"CPU AMD Ryzen 7 7800X3D",
			"32GB DDR5 6000MHz RAM",
			"SSD NVMe 1TB Gen4",
			"Fuente SFX 750W 80+ Gold",
		},
		Rating:  4.5,
		InStock: true,
		Desc:    "Formato ITX para escritorios pequeños.",
	},
}

// All devuelve el catálogo completo en orden estable.
func All() []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	return out
}

// ByID busca un producto por id.
func ByID(id string) (*model.Product, error) {
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// BySlug busca un producto por slug (usado por el routing de fichas).
func BySlug(slug string) (*model.Product, error) {
	for i := range products {
		if products[i].Slug == slug {
			p := products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}
