// Package payment encapsula al proveedor externo de pago alojado: a partir
// de un snapshot del carrito devuelve la URL de redirección a su página de
// checkout.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"titanpc-store/internal/model"
)

// ErrNotConfigured indica que no hay clave de API: el checkout degrada a un
// mensaje al usuario en lugar de romper el flujo.
var ErrNotConfigured = errors.New("el proveedor de pago no está configurado")

// Session es la respuesta del proveedor: id de sesión y URL alojada.
type Session struct {
	ID          string `json:"id"`
	RedirectURL string `json:"url"`
}

type Provider interface {
	CreateSession(ctx context.Context, items []model.OrderItem, customerEmail, successURL, cancelURL string) (*Session, error)
}

// HTTPProvider habla con el proveedor por HTTP. Sin reintentos ni backoff:
// un fallo se reporta al usuario y la operación no se repite sola.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sessionRequest struct {
	Email      string            `json:"email"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	Items      []sessionLineItem `json:"items"`
}

type sessionLineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	// Importe en céntimos, como lo espera el proveedor.
	UnitAmount int64 `json:"unit_amount"`
	Quantity   int   `json:"quantity"`
}

func (p *HTTPProvider) CreateSession(ctx context.Context, items []model.OrderItem, customerEmail, successURL, cancelURL string) (*Session, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	payload := sessionRequest{
		Email:      customerEmail,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}
	for _, it := range items {
		payload.Items = append(payload.Items, sessionLineItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			UnitAmount: int64(math.Round(it.Price * 100)),
			Quantity:   it.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment provider devolvió %d", resp.StatusCode)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
