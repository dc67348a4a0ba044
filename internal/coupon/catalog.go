// catalog.go
package coupon

import (
	"time"

	"titanpc-store/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Cupones vigentes de la tienda. Igual que el catálogo de productos, son
// constantes de compilación; usedCount se materializa aparte en el almacén
// clave-valor.
func ActiveCoupons() []model.Coupon {
	return []model.Coupon{
		{
			Code:       "EQW",
			Type:       model.CouponPercentage,
			Value:      5,
			ValidFrom:  date(2025, time.January, 1),
			ValidUntil: date(2027, time.December, 31),
			Active:     true,
		},
		{
			Code:        "GAMING20",
			Type:        model.CouponPercentage,
			Value:       20,
			MinAmount:   1000,
			MaxDiscount: 200,
			ValidFrom:   date(2025, time.June, 1),
			ValidUntil:  date(2027, time.June, 30),
			Active:      true,
		},
		{
			Code:       "NAVIDAD50",
			Type:       model.CouponFixed,
			Value:      50,
			MinAmount:  800,
			ValidFrom:  date(2025, time.December, 1),
			ValidUntil: date(2026, time.January, 7),
			Active:     true,
		},
		{
			Code:               "TITANPRO10",
			Type:               model.CouponPercentage,
			Value:              10,
			MaxDiscount:        150,
			ValidFrom:          date(2025, time.March, 1),
			ValidUntil:         date(2027, time.March, 1),
			UsageLimit:         500,
			Active:             true,
			ApplicableProducts: []string{"titan-pro", "titan-ultra"},
		},
		{
			Code:       "VERANO15",
			Type:       model.CouponPercentage,
			Value:      15,
			MinAmount:  1200,
			ValidFrom:  date(2025, time.July, 1),
			ValidUntil: date(2025, time.August, 31),
			Active:     false, // campaña cerrada
		},
	}
}
