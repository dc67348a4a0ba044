// export.go
package compare

import (
	"encoding/json"
	"fmt"
	"time"

	"titanpc-store/internal/model"
)

// ExportedProduct es la proyección de producto incluida en una exportación.
type ExportedProduct struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
	Rating  float64 `json:"rating"`
	InStock bool    `json:"inStock"`
}

// Export es el documento JSON que el usuario descarga. Sin versionado de
// esquema.
type Export struct {
	Comparison model.SavedComparison `json:"comparison"`
	Products   []ExportedProduct     `json:"products"`
	ExportedAt time.Time             `json:"exportedAt"`
}

// BuildExport serializa una comparativa con sus productos proyectados a un
// documento JSON UTF-8 y propone un nombre de fichero basado en la fecha.
func BuildExport(c model.SavedComparison, products []model.Product) ([]byte, string, error) {
	now := time.Now().UTC()

	exported := make([]ExportedProduct, 0, len(products))
	for _, p := range products {
		exported = append(exported, ExportedProduct{
			ID:      p.ID,
			Name:    p.Name,
			Price:   p.Price,
			Image:   p.Image,
			Rating:  p.Rating,
			InStock: p.InStock,
		})
	}

	doc := Export{Comparison: c, Products: exported, ExportedAt: now}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("comparativa-%s.json", now.Format("20060102-150405"))
	return raw, filename, nil
}

// ParseExport deshace una exportación; usado para reimportar comparativas.
func ParseExport(raw []byte) (*Export, error) {
	var doc Export
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
