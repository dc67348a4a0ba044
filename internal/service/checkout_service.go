package service

import (
	"context"
	"errors"
	"time"

	"titanpc-store/internal/catalog"
	"titanpc-store/internal/coupon"
	"titanpc-store/internal/model"
	"titanpc-store/internal/payment"
)

var (
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrProductNotFound = errors.New("algún producto del carrito ya no existe")
	ErrOutOfStock      = errors.New("algún producto del carrito está agotado")
)

// CheckoutService convierte el snapshot del carrito en una sesión de pago
// alojada.
type CheckoutService struct {
	provider   payment.Provider
	validator  *coupon.Validator
	successURL string
	cancelURL  string
}

func NewCheckoutService(provider payment.Provider, validator *coupon.Validator, successURL, cancelURL string) *CheckoutService {
	return &CheckoutService{
		provider:   provider,
		validator:  validator,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CheckoutResult es lo que el cliente necesita para redirigir al pago.
type CheckoutResult struct {
	SessionID   string  `json:"sessionId"`
	RedirectURL string  `json:"redirectUrl"`
	Total       float64 `json:"total"`
	Discount    float64 `json:"discount,omitempty"`
}

// CreateSession resuelve los productos del carrito contra el catálogo, aplica
// el cupón si llega uno válido y pide la sesión al proveedor. Los errores del
// proveedor se devuelven tal cual; el handler distingue ErrNotConfigured para
// degradar con mensaje.
func (s *CheckoutService) CreateSession(ctx context.Context, items map[string]int, customerEmail, couponCode string) (*CheckoutResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var lineItems []model.OrderItem
	var productIDs []string
	total := 0.0
	for id, qty := range items {
		if qty <= 0 {
			continue
		}
		p, err := catalog.ByID(id)
		if err != nil {
			return nil, ErrProductNotFound
		}
		if !p.InStock {
			return nil, ErrOutOfStock
		}
		lineItems = append(lineItems, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Image:     p.Image,
		})
		productIDs = append(productIDs, p.ID)
		total += p.Price * float64(qty)
	}
	if len(lineItems) == 0 {
		return nil, ErrEmptyCart
	}

	discount := 0.0
	if couponCode != "" {
		res := s.validator.Validate(couponCode, total, productIDs, time.Now())
		if res.Valid {
			discount = res.Discount
		}
	}

	session, err := s.provider.CreateSession(ctx, lineItems, customerEmail, s.successURL, s.cancelURL)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		SessionID:   session.ID,
		RedirectURL: session.RedirectURL,
		Total:       total - discount,
		Discount:    discount,
	}, nil
}
