package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/cart"
	"titanpc-store/internal/catalog"
	"titanpc-store/internal/dto"
)

type CartController struct {
	Cart          *cart.Cart
	Wishlist      *cart.Wishlist
	Notifications *cart.Notifications
}

func NewCartController(c *cart.Cart, w *cart.Wishlist, n *cart.Notifications) *CartController {
	return &CartController{Cart: c, Wishlist: w, Notifications: n}
}

// GET /cart — contenido con líneas resueltas contra el catálogo y total
func (ctl *CartController) Get(c *gin.Context) {
	items := ctl.Cart.Items()

	lines := []gin.H{}
	total := 0.0
	for id, qty := range items {
		p, err := catalog.ByID(id)
		if err != nil {
			// Producto retirado del catálogo: la línea se muestra huérfana,
			// no rompe el carrito.
			lines = append(lines, gin.H{"productId": id, "quantity": qty})
			continue
		}
		lines = append(lines, gin.H{
			"productId": id,
			"name":      p.Name,
			"price":     p.Price,
			"image":     p.Image,
			"inStock":   p.InStock,
			"quantity":  qty,
			"subtotal":  p.Price * float64(qty),
		})
		total += p.Price * float64(qty)
	}

	c.JSON(http.StatusOK, gin.H{"items": lines, "total": total})
}

// POST /cart/items
func (ctl *CartController) AddItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := catalog.ByID(req.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}

	if err := ctl.Cart.Add(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ctl.Cart.Items()})
}

// PUT /cart/items/:productId
func (ctl *CartController) SetQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Cart.SetQuantity(c.Request.Context(), c.Param("productId"), req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ctl.Cart.Items()})
}

// DELETE /cart/items/:productId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	if err := ctl.Cart.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ctl.Cart.Items()})
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Cart.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "carrito vacío"})
}

// GET /wishlist
func (ctl *CartController) GetWishlist(c *gin.Context) {
	ids := ctl.Wishlist.List()
	out := []gin.H{}
	for _, id := range ids {
		if p, err := catalog.ByID(id); err == nil {
			out = append(out, gin.H{"product": p})
		}
	}
	c.JSON(http.StatusOK, out)
}

// POST /wishlist/:productId/toggle
func (ctl *CartController) ToggleWishlist(c *gin.Context) {
	id := c.Param("productId")
	if _, err := catalog.ByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado"})
		return
	}

	added, err := ctl.Wishlist.Toggle(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inWishlist": added})
}

// GET /notifications
func (ctl *CartController) ListNotifications(c *gin.Context) {
	list, err := ctl.Notifications.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /notifications/:id/read
func (ctl *CartController) MarkNotificationRead(c *gin.Context) {
	if err := ctl.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "leída"})
}

// DELETE /notifications
func (ctl *CartController) ClearNotifications(c *gin.Context) {
	if err := ctl.Notifications.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notificaciones vaciadas"})
}
