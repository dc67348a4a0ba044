package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanpc-store/internal/coupon"
	"titanpc-store/internal/model"
	"titanpc-store/internal/payment"
)

type fakeProvider struct {
	lastItems []model.OrderItem
	err       error
}

func (f *fakeProvider) CreateSession(_ context.Context, items []model.OrderItem, _, _, _ string) (*payment.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastItems = items
	return &payment.Session{ID: "cs_test", RedirectURL: "https://pay.example/cs_test"}, nil
}

func newCheckout(p payment.Provider) *CheckoutService {
	return NewCheckoutService(p, coupon.NewValidator(coupon.ActiveCoupons()),
		"https://titanpc.example/gracias", "https://titanpc.example/carrito")
}

func TestCreateSessionHappyPath(t *testing.T) {
	provider := &fakeProvider{}
	svc := newCheckout(provider)

	res, err := svc.CreateSession(context.Background(), map[string]int{"titan-pro": 1}, "ana@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "cs_test", res.SessionID)
	assert.Equal(t, "https://pay.example/cs_test", res.RedirectURL)
	assert.Equal(t, 2299.0, res.Total)
	require.Len(t, provider.lastItems, 1)
	assert.Equal(t, "TITAN Pro", provider.lastItems[0].Name)
}

func TestCreateSessionEmptyCart(t *testing.T) {
	svc := newCheckout(&fakeProvider{})
	_, err := svc.CreateSession(context.Background(), map[string]int{}, "ana@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCreateSessionUnknownProduct(t *testing.T) {
	svc := newCheckout(&fakeProvider{})
	_, err := svc.CreateSession(context.Background(), map[string]int{"no-existe": 1}, "ana@example.com", "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateSessionOutOfStock(t *testing.T) {
	svc := newCheckout(&fakeProvider{})
	// epical-creator está agotado en el catálogo.
	_, err := svc.CreateSession(context.Background(), map[string]int{"epical-creator": 1}, "ana@example.com", "")
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestCreateSessionAppliesCoupon(t *testing.T) {
	svc := newCheckout(&fakeProvider{})
	res, err := svc.CreateSession(context.Background(), map[string]int{"titan-pro": 1}, "ana@example.com", "GAMING20")
	require.NoError(t, err)
	// 20% de 2299 = 459.80, recortado a maxDiscount 200.
	assert.Equal(t, 200.0, res.Discount)
	assert.Equal(t, 2099.0, res.Total)
}

func TestCreateSessionInvalidCouponIgnored(t *testing.T) {
	svc := newCheckout(&fakeProvider{})
	res, err := svc.CreateSession(context.Background(), map[string]int{"titan-pro": 1}, "ana@example.com", "NOEXISTE")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Discount)
}

func TestCreateSessionProviderNotConfigured(t *testing.T) {
	svc := newCheckout(&fakeProvider{err: payment.ErrNotConfigured})
	_, err := svc.CreateSession(context.Background(), map[string]int{"titan-pro": 1}, "ana@example.com", "")
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
}
