package rabbit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanpc-store/internal/model"
	"titanpc-store/internal/repository"
	"titanpc-store/internal/service"
)

// memOrderRepo es el repositorio en memoria mínimo para probar el consumer.
type memOrderRepo struct {
	orders map[string]*model.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*model.Order{}}
}

func (m *memOrderRepo) Save(_ context.Context, o *model.Order) error {
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memOrderRepo) FindByTrackingNumber(_ context.Context, tracking string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.NumeroSeguimiento == tracking {
			return o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memOrderRepo) FindBySessionID(_ context.Context, sessionID string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.SessionID == sessionID {
			return o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memOrderRepo) FindByCustomerEmail(_ context.Context, email string) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range m.orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) FindAll(_ context.Context) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id string, estado model.OrderStatus, event model.TrackingEvent) error {
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Estado = estado
	o.Eventos = append(o.Eventos, event)
	return nil
}

func (m *memOrderRepo) AppendEvent(_ context.Context, id string, event model.TrackingEvent) error {
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Eventos = append(o.Eventos, event)
	return nil
}

func (m *memOrderRepo) UpdateShippingAddress(_ context.Context, id string, addr model.ShippingAddress) error {
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.ShippingAddress = addr
	return nil
}

func TestHandleCheckoutCompleted(t *testing.T) {
	repo := newMemOrderRepo()
	consumer := NewCheckoutCompletedConsumer(service.NewOrderService(repo))

	payload := []byte(`{
		"correlation_id": "abc",
		"exchange": "checkout_completed",
		"routing_key": "",
		"message": {
			"sessionId": "cs_9",
			"email": "ana@example.com",
			"shipping": {"city": "Madrid", "postalCode": "28001"},
			"items": [
				{"productId": "titan-pro", "name": "TITAN Pro", "unitAmount": 229900, "quantity": 1},
				{"productId": "teclado", "name": "Teclado mecánico", "unitAmount": 4999, "quantity": 2}
			]
		}
	}`)

	require.NoError(t, consumer.Handle(payload))

	order, err := repo.FindBySessionID(context.Background(), "cs_9")
	require.NoError(t, err)
	// El proveedor habla en céntimos; la orden guarda euros decimales.
	assert.Equal(t, 2299.0+49.99*2, order.Total)
	assert.Equal(t, 49.99, order.Productos[1].Price)
	assert.Equal(t, "Madrid", order.ShippingAddress.City)
}

func TestHandleCheckoutCompletedRedelivery(t *testing.T) {
	repo := newMemOrderRepo()
	consumer := NewCheckoutCompletedConsumer(service.NewOrderService(repo))

	payload := []byte(`{
		"message": {
			"sessionId": "cs_dup",
			"email": "ana@example.com",
			"items": [{"productId": "titan-pro", "name": "TITAN Pro", "unitAmount": 229900, "quantity": 1}]
		}
	}`)

	require.NoError(t, consumer.Handle(payload))
	require.NoError(t, consumer.Handle(payload))
	assert.Len(t, repo.orders, 1)
}

func TestHandleCheckoutCompletedBadPayload(t *testing.T) {
	consumer := NewCheckoutCompletedConsumer(service.NewOrderService(newMemOrderRepo()))
	assert.Error(t, consumer.Handle([]byte("###")))
}
