package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/dto"
	"titanpc-store/internal/model"
	"titanpc-store/internal/repository"
	"titanpc-store/internal/service"
	"titanpc-store/internal/status"
)

type OrderController struct {
	Service *service.OrderService
}

func NewOrderController(s *service.OrderService) *OrderController {
	return &OrderController{Service: s}
}

func orderResponse(o *model.Order) gin.H {
	return gin.H{
		"order":    o,
		"progress": status.For(o.Estado),
	}
}

// GET /orders/:orderId
func (ctl *OrderController) GetByID(c *gin.Context) {
	o, err := ctl.Service.GetByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "orden no encontrada"})
		return
	}
	c.JSON(http.StatusOK, orderResponse(o))
}

// GET /tracking/:numero — seguimiento público por número de envío
func (ctl *OrderController) GetByTracking(c *gin.Context) {
	o, err := ctl.Service.GetByTrackingNumber(c.Request.Context(), c.Param("numero"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "número de seguimiento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, orderResponse(o))
}

// GET /orders/by-session/:sessionId — usado por la página de gracias
func (ctl *OrderController) GetBySession(c *gin.Context) {
	o, err := ctl.Service.GetBySessionID(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "orden no encontrada"})
		return
	}
	c.JSON(http.StatusOK, orderResponse(o))
}

// GET /orders/mine — órdenes del usuario autenticado
func (ctl *OrderController) GetMine(c *gin.Context) {
	email := c.GetString("userEmail")
	orders, err := ctl.Service.GetByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

// GET /admin/orders — listado completo para el panel de administración
func (ctl *OrderController) ListAll(c *gin.Context) {
	orders, err := ctl.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	c.JSON(http.StatusOK, out)
}

// PATCH /admin/orders/:orderId/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Service.UpdateStatus(
		c.Request.Context(),
		c.Param("orderId"),
		model.OrderStatus(req.Estado),
		req.Descripcion,
		req.Ubicacion,
	)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "estado actualizado"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "orden no encontrada"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// POST /admin/orders/:orderId/events
func (ctl *OrderController) AppendEvent(c *gin.Context) {
	var req dto.TrackingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Service.AppendTrackingEvent(c.Request.Context(), c.Param("orderId"), req.Descripcion, req.Ubicacion, req.Completado)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "orden no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "evento registrado"})
}

// PATCH /orders/:orderId/shipping
func (ctl *OrderController) UpdateShipping(c *gin.Context) {
	var req dto.ShippingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addr := model.ShippingAddress{
		AddressLine1: req.AddressLine1,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Province:     req.Province,
		Country:      req.Country,
		Comments:     req.Comments,
	}

	err := ctl.Service.UpdateShippingAddress(c.Request.Context(), c.Param("orderId"), addr)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "dirección actualizada"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "orden no encontrada"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
