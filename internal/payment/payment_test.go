package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanpc-store/internal/model"
)

var items = []model.OrderItem{
	{ProductID: "titan-pro", Name: "TITAN Pro", Price: 2299, Quantity: 1},
}

func TestCreateSessionNotConfigured(t *testing.T) {
	p := NewHTTPProvider("https://api.payment.example", "")
	_, err := p.CreateSession(context.Background(), items, "ana@example.com", "s", "c")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req sessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		// Importe en céntimos.
		assert.Equal(t, int64(229900), req.Items[0].UnitAmount)

		json.NewEncoder(w).Encode(Session{ID: "cs_1", RedirectURL: "https://pay.example/cs_1"})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "sk_test")
	session, err := p.CreateSession(context.Background(), items, "ana@example.com", "s", "c")
	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)
	assert.Equal(t, "https://pay.example/cs_1", session.RedirectURL)
}

func TestCreateSessionRoundsFractionalPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 2)
		// 19.99 en float64 es 19.989999...; sin redondeo el truncado daría 1998.
		assert.Equal(t, int64(1999), req.Items[0].UnitAmount)
		assert.Equal(t, int64(104995), req.Items[1].UnitAmount)

		json.NewEncoder(w).Encode(Session{ID: "cs_2", RedirectURL: "https://pay.example/cs_2"})
	}))
	defer srv.Close()

	fractional := []model.OrderItem{
		{ProductID: "ratón", Name: "Ratón óptico", Price: 19.99, Quantity: 1},
		{ProductID: "monitor", Name: "Monitor 27\"", Price: 1049.95, Quantity: 1},
	}

	p := NewHTTPProvider(srv.URL, "sk_test")
	_, err := p.CreateSession(context.Background(), fractional, "ana@example.com", "s", "c")
	require.NoError(t, err)
}

func TestCreateSessionProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "sk_test")
	_, err := p.CreateSession(context.Background(), items, "ana@example.com", "s", "c")
	assert.Error(t, err)
}
