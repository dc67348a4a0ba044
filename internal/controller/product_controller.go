package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/cart"
	"titanpc-store/internal/catalog"
	"titanpc-store/internal/compare"
	"titanpc-store/internal/scoring"
	"titanpc-store/internal/session"
)

type ProductController struct {
	Recent   *cart.Recent
	Sessions *session.Manager
}

func NewProductController(recent *cart.Recent, sessions *session.Manager) *ProductController {
	return &ProductController{Recent: recent, Sessions: sessions}
}

// GET /products — catálogo completo con la puntuación rápida de catálogo
func (ctl *ProductController) List(c *gin.Context) {
	products := catalog.All()

	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, gin.H{
			"product":    p,
			"quickScore": compare.QuickScore(p),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /products/:slug — ficha con benchmarks y scores si existen
func (ctl *ProductController) BySlug(c *gin.Context) {
	slug := c.Param("slug")

	p, err := catalog.BySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}

	res := gin.H{"product": p, "quickScore": compare.QuickScore(*p)}
	if b, ok := catalog.BenchmarkFor(p.ID); ok {
		res["benchmarks"] = b
		res["scores"] = gin.H{
			"performance": scoring.PerformanceScore(b),
			"value":       scoring.ValueScore(b, p.Price),
			"features":    scoring.FeaturesScore(b),
			"global":      scoring.GlobalScore(b, p.Price),
		}
	}

	c.JSON(http.StatusOK, res)
}

// POST /products/:slug/view — tracking de vista, mejor esfuerzo
func (ctl *ProductController) TrackView(c *gin.Context) {
	slug := c.Param("slug")

	p, err := catalog.BySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}

	sessionID, err := ctl.Sessions.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := ctl.Recent.Track(c.Request.Context(), p.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// GET /products/recent — últimos productos visitados
func (ctl *ProductController) RecentlyViewed(c *gin.Context) {
	ids, err := ctl.Recent.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, id := range ids {
		if p, err := catalog.ByID(id); err == nil {
			out = append(out, gin.H{"product": p})
		}
	}
	c.JSON(http.StatusOK, out)
}
