package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"titanpc-store/internal/catalog"
	"titanpc-store/internal/dto"
	"titanpc-store/internal/model"
	"titanpc-store/internal/payment"
	"titanpc-store/internal/service"
)

type CheckoutController struct {
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

func NewCheckoutController(checkout *service.CheckoutService, orders *service.OrderService) *CheckoutController {
	return &CheckoutController{Checkout: checkout, Orders: orders}
}

// POST /checkout — crea la sesión de pago y devuelve la URL de redirección.
// Si el proveedor no está configurado se degrada con un mensaje claro en vez
// de romper el flujo.
func (ctl *CheckoutController) CreateSession(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := ctl.Checkout.CreateSession(c.Request.Context(), req.Items, req.Email, req.CouponCode)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, payment.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "El pago no está disponible en este momento. Inténtalo más tarde.",
		})
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOutOfStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// POST /checkout/complete — webhook del proveedor al confirmarse el cobro.
// También llega por Rabbit; ambas vías son idempotentes por sessionId.
func (ctl *CheckoutController) Complete(c *gin.Context) {
	var req dto.CompleteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     catalog.PriceFromMinorUnits(it.UnitAmount),
			Quantity:  it.Quantity,
		})
	}

	addr := model.ShippingAddress{
		AddressLine1: req.Shipping.AddressLine1,
		City:         req.Shipping.City,
		PostalCode:   req.Shipping.PostalCode,
		Province:     req.Shipping.Province,
		Country:      req.Shipping.Country,
		Comments:     req.Shipping.Comments,
	}

	order, err := ctl.Orders.CreateFromCheckout(c.Request.Context(), req.SessionID, req.Email, addr, items)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, orderResponse(order))
	case errors.Is(err, service.ErrOrderAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
