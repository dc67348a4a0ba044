package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanpc-store/internal/kvstore"
	"titanpc-store/internal/model"
)

// Instante dentro de la ventana de todos los cupones de campaña navideña.
var navidad = time.Date(2025, time.December, 15, 12, 0, 0, 0, time.UTC)

func newValidator() *Validator {
	return NewValidator(ActiveCoupons())
}

func TestValidateUnknownCode(t *testing.T) {
	res := newValidator().Validate("NOEXISTE", 1000, nil, navidad)
	assert.False(t, res.Valid)
	assert.Equal(t, "Cupón no válido", res.Message)
}

func TestValidateInactiveCouponIsNotFound(t *testing.T) {
	res := newValidator().Validate("VERANO15", 2000, nil, navidad)
	assert.False(t, res.Valid)
	assert.Equal(t, "Cupón no válido", res.Message)
}

func TestValidateCaseInsensitive(t *testing.T) {
	v := newValidator()
	lower := v.Validate("eqw", 1000, nil, navidad)
	upper := v.Validate("EQW", 1000, nil, navidad)
	assert.Equal(t, upper, lower)
	assert.True(t, lower.Valid)
}

func TestValidatePercentageDiscount(t *testing.T) {
	// EQW: 5% de 1000 = 50.00
	res := newValidator().Validate("EQW", 1000, nil, navidad)
	require.True(t, res.Valid)
	assert.Equal(t, 50.0, res.Discount)
}

func TestValidateMaxDiscountClamp(t *testing.T) {
	// GAMING20: 20% de 2000 = 400, recortado a maxDiscount 200.
	res := newValidator().Validate("GAMING20", 2000, nil, navidad)
	require.True(t, res.Valid)
	assert.Equal(t, 200.0, res.Discount)
}

func TestValidateMinAmount(t *testing.T) {
	// NAVIDAD50 exige pedido mínimo de 800.
	res := newValidator().Validate("NAVIDAD50", 500, nil, navidad)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message, "mínimo")
}

func TestValidateDateWindow(t *testing.T) {
	v := newValidator()

	early := v.Validate("NAVIDAD50", 1000, nil, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, early.Valid)
	assert.Equal(t, "Este cupón aún no está activo", early.Message)

	late := v.Validate("NAVIDAD50", 1000, nil, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, late.Valid)
	assert.Equal(t, "Este cupón ha expirado", late.Message)
}

func TestValidateDateWindowInclusive(t *testing.T) {
	v := newValidator()
	res := v.Validate("NAVIDAD50", 1000, nil, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, res.Valid)
}

func TestValidateApplicableProducts(t *testing.T) {
	v := newValidator()

	miss := v.Validate("TITANPRO10", 2500, []string{"titan-starter"}, navidad)
	assert.False(t, miss.Valid)
	assert.Contains(t, miss.Message, "no aplica")

	hit := v.Validate("TITANPRO10", 2500, []string{"titan-starter", "titan-pro"}, navidad)
	assert.True(t, hit.Valid)
}

func TestValidateUsageLimit(t *testing.T) {
	agotado := model.Coupon{
		Code:       "AGOTADO",
		Type:       model.CouponPercentage,
		Value:      10,
		ValidFrom:  navidad.AddDate(0, -1, 0),
		ValidUntil: navidad.AddDate(0, 1, 0),
		UsageLimit: 100,
		UsedCount:  100,
		Active:     true,
	}
	res := NewValidator([]model.Coupon{agotado}).Validate("AGOTADO", 1000, nil, navidad)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Message, "límite")
}

func TestDiscountNeverExceedsCartTotal(t *testing.T) {
	// NAVIDAD50 es fijo de 50 con mínimo 800; con un carrito justo por encima
	// del mínimo el descuento cabe, pero un cupón fijo mayor que el total se
	// recorta al total.
	grande := model.Coupon{
		Code:       "FIJO500",
		Type:       model.CouponFixed,
		Value:      500,
		ValidFrom:  navidad.AddDate(0, -1, 0),
		ValidUntil: navidad.AddDate(0, 1, 0),
		Active:     true,
	}
	res := NewValidator([]model.Coupon{grande}).Validate("FIJO500", 300, nil, navidad)
	require.True(t, res.Valid)
	assert.Equal(t, 300.0, res.Discount)
}

func TestDiscountRoundedToCents(t *testing.T) {
	res := newValidator().Validate("EQW", 999.99, nil, navidad)
	require.True(t, res.Valid)
	assert.Equal(t, 50.0, res.Discount) // 49.9995 → 50.00
}

func TestDiscountProperties(t *testing.T) {
	v := newValidator()
	totals := []float64{0, 10, 799.99, 800, 1500, 99999}
	codes := []string{"EQW", "GAMING20", "NAVIDAD50", "TITANPRO10"}

	for _, code := range codes {
		for _, total := range totals {
			res := v.Validate(code, total, []string{"titan-pro"}, navidad)
			if !res.Valid {
				continue
			}
			assert.LessOrEqual(t, res.Discount, total, "cupón %s total %v", code, total)
			if res.Coupon.MaxDiscount > 0 {
				assert.LessOrEqual(t, res.Discount, res.Coupon.MaxDiscount)
			}
		}
	}
}

func TestUsedStore(t *testing.T) {
	u := NewUsedStore(kvstore.NewMemoryStore())
	ctx := context.Background()

	used, err := u.IsUsed(ctx, "EQW")
	require.NoError(t, err)
	assert.False(t, used)

	require.NoError(t, u.MarkUsed(ctx, "eqw"))

	used, err = u.IsUsed(ctx, "EQW")
	require.NoError(t, err)
	assert.True(t, used)

	// Idempotente.
	require.NoError(t, u.MarkUsed(ctx, "EQW"))
	codes, err := u.List(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 1)

	require.NoError(t, u.Clear(ctx))
	codes, err = u.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
