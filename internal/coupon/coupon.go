// Package coupon valida códigos de descuento contra el total del carrito,
// los productos seleccionados, la ventana de fechas y el límite de usos.
package coupon

import (
	"fmt"
	"math"
	"strings"
	"time"

	"titanpc-store/internal/model"
)

// Result es la salida de una validación. Los errores de validación se
// devuelven como mensaje inline, nunca como error de Go (spec de UX: el
// usuario ve el motivo, el flujo no se interrumpe).
type Result struct {
	Valid    bool          `json:"valid"`
	Message  string        `json:"message"`
	Discount float64       `json:"discount,omitempty"`
	Coupon   *model.Coupon `json:"coupon,omitempty"`
}

// Validator resuelve códigos contra un conjunto de cupones.
type Validator struct {
	coupons []model.Coupon
}

func NewValidator(coupons []model.Coupon) *Validator {
	return &Validator{coupons: coupons}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// Validate aplica las comprobaciones en orden fijo y corta en la primera que
// falla; el orden determina qué mensaje ve el usuario y no debe alterarse:
//
//	1. búsqueda por código (insensible a mayúsculas, solo activos)
//	2. ventana de fechas (inclusive), distinguiendo "aún no activo" de "expirado"
//	3. compra mínima
//	4. productos aplicables (basta una intersección)
//	5. límite de usos
//
// El descuento nunca supera el total del carrito ni maxDiscount.
func (v *Validator) Validate(code string, cartTotal float64, productIDs []string, now time.Time) Result {
	c := v.lookup(code)
	if c == nil {
		return invalid("Cupón no válido")
	}

	if now.Before(c.ValidFrom) {
		return invalid("Este cupón aún no está activo")
	}
	if now.After(c.ValidUntil) {
		return invalid("Este cupón ha expirado")
	}

	if c.MinAmount > 0 && cartTotal < c.MinAmount {
		return invalid(fmt.Sprintf("Pedido mínimo de %.2f € para usar este cupón", c.MinAmount))
	}

	if len(c.ApplicableProducts) > 0 && !intersects(c.ApplicableProducts, productIDs) {
		return invalid("Este cupón no aplica a los productos de tu carrito")
	}

	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return invalid("Este cupón ha alcanzado su límite de usos")
	}

	discount := computeDiscount(*c, cartTotal)
	return Result{
		Valid:    true,
		Message:  fmt.Sprintf("Cupón %s aplicado", c.Code),
		Discount: discount,
		Coupon:   c,
	}
}

func (v *Validator) lookup(code string) *model.Coupon {
	for i := range v.coupons {
		if v.coupons[i].Active && strings.EqualFold(v.coupons[i].Code, code) {
			c := v.coupons[i]
			return &c
		}
	}
	return nil
}

func intersects(applicable, cart []string) bool {
	for _, a := range applicable {
		for _, p := range cart {
			if a == p {
				return true
			}
		}
	}
	return false
}

func computeDiscount(c model.Coupon, cartTotal float64) float64 {
	var discount float64
	switch c.Type {
	case model.CouponPercentage:
		discount = cartTotal * c.Value / 100
	case model.CouponFixed:
		discount = c.Value
	}

	if c.MaxDiscount > 0 && discount > c.MaxDiscount {
		discount = c.MaxDiscount
	}
	if discount > cartTotal {
		discount = cartTotal
	}
	return round2(discount)
}

// round2 redondea a 2 decimales (céntimos), half-up.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
