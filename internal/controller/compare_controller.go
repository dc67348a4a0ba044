package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/catalog"
	"titanpc-store/internal/compare"
	"titanpc-store/internal/dto"
	"titanpc-store/internal/model"
	"titanpc-store/internal/scoring"
)

type CompareController struct {
	Store *compare.Store
}

func NewCompareController(store *compare.Store) *CompareController {
	return &CompareController{Store: store}
}

func resolveProducts(ids []string) ([]model.Product, error) {
	if len(ids) > compare.MaxProducts {
		return nil, compare.ErrTooManyProducts
	}
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		p, err := catalog.ByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// POST /compare — tabla comparativa, mejores por métrica y scores
func (ctl *CompareController) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := resolveProducts(req.Products)
	if err != nil {
		statusForCompareError(c, err)
		return
	}

	scores := gin.H{}
	for _, p := range products {
		if b, ok := catalog.BenchmarkFor(p.ID); ok {
			scores[p.ID] = gin.H{
				"performance": scoring.PerformanceScore(b),
				"value":       scoring.ValueScore(b, p.Price),
				"features":    scoring.FeaturesScore(b),
				"global":      scoring.GlobalScore(b, p.Price),
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"rows": compare.CompareSpecs(products),
		"best": gin.H{
			"price":       compare.BestInCategory(products, compare.MetricPrice),
			"performance": compare.BestInCategory(products, compare.MetricPerformance),
			"value":       compare.BestInCategory(products, compare.MetricValue),
		},
		"scores": scores,
	})
}

func statusForCompareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, compare.ErrTooManyProducts):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, compare.ErrComparisonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /comparisons — comparativas guardadas, más reciente primero
func (ctl *CompareController) List(c *gin.Context) {
	list, err := ctl.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /comparisons
func (ctl *CompareController) Save(c *gin.Context) {
	var req dto.SaveComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := resolveProducts(req.Products); err != nil {
		statusForCompareError(c, err)
		return
	}

	saved, err := ctl.Store.Save(c.Request.Context(), req.Name, req.Products)
	if err != nil {
		statusForCompareError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// PATCH /comparisons/:id
func (ctl *CompareController) Update(c *gin.Context) {
	var req dto.UpdateComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Products != nil {
		if _, err := resolveProducts(req.Products); err != nil {
			statusForCompareError(c, err)
			return
		}
	}

	updated, err := ctl.Store.Update(c.Request.Context(), c.Param("id"), req.Name, req.Products)
	if err != nil {
		statusForCompareError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /comparisons/:id
func (ctl *CompareController) Delete(c *gin.Context) {
	if err := ctl.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		statusForCompareError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comparativa eliminada"})
}

// GET /comparisons/:id/export — descarga JSON de la comparativa
func (ctl *CompareController) Export(c *gin.Context) {
	list, err := ctl.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	for _, saved := range list {
		if saved.ID != id {
			continue
		}
		products, err := resolveProducts(saved.Products)
		if err != nil {
			statusForCompareError(c, err)
			return
		}
		raw, filename, err := compare.BuildExport(saved, products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "comparativa no encontrada"})
}
