// notifications.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"titanpc-store/internal/kvstore"
)

const notificationsKey = "titanpc_notifications"

// Máximo de notificaciones retenidas; las más antiguas se descartan.
const maxNotifications = 50

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifications persiste los avisos de la tienda (pedido confirmado, cambio
// de estado, oferta) en el puerto clave-valor.
type Notifications struct {
	kv        kvstore.Store
	observers *observers
}

func NewNotifications(kv kvstore.Store) *Notifications {
	n := &Notifications{kv: kv, observers: newObservers()}
	kv.Subscribe(func(key string) {
		if key == notificationsKey {
			n.observers.notify()
		}
	})
	return n
}

func (n *Notifications) List(ctx context.Context) ([]Notification, error) {
	raw, err := n.kv.Get(ctx, notificationsKey)
	if errors.Is(err, kvstore.ErrNoValue) {
		return []Notification{}, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Notification
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []Notification{}, nil
	}
	return out, nil
}

// Push añade un aviso al frente de la lista.
func (n *Notifications) Push(ctx context.Context, message string) (*Notification, error) {
	existing, err := n.List(ctx)
	if err != nil {
		return nil, err
	}

	notif := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	updated := append([]Notification{notif}, existing...)
	if len(updated) > maxNotifications {
		updated = updated[:maxNotifications]
	}
	if err := n.write(ctx, updated); err != nil {
		return nil, err
	}
	return &notif, nil
}

func (n *Notifications) MarkRead(ctx context.Context, id string) error {
	existing, err := n.List(ctx)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].ID == id {
			existing[i].Read = true
		}
	}
	return n.write(ctx, existing)
}

func (n *Notifications) Clear(ctx context.Context) error {
	return n.kv.Remove(ctx, notificationsKey)
}

// write no notifica: la suscripción al almacén es el único camino de aviso.
func (n *Notifications) write(ctx context.Context, list []Notification) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return n.kv.Set(ctx, notificationsKey, string(raw))
}

func (n *Notifications) Subscribe(fn func()) func() {
	return n.observers.add(fn)
}
