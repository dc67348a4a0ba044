// recent.go
package cart

import (
	"context"
	"encoding/json"
	"errors"

	"titanpc-store/internal/kvstore"
)

const recentKey = "titanpc_recently_viewed"

// Máximo de productos recordados en "vistos recientemente".
const maxRecent = 8

// Recent registra los últimos productos visitados, más reciente primero y
// sin duplicados.
type Recent struct {
	kv kvstore.Store
}

func NewRecent(kv kvstore.Store) *Recent {
	return &Recent{kv: kv}
}

func (r *Recent) List(ctx context.Context) ([]string, error) {
	raw, err := r.kv.Get(ctx, recentKey)
	if errors.Is(err, kvstore.ErrNoValue) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

// Track mueve (o inserta) el producto al frente de la lista.
func (r *Recent) Track(ctx context.Context, productID string) error {
	ids, err := r.List(ctx)
	if err != nil {
		return err
	}

	updated := []string{productID}
	for _, id := range ids {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, recentKey, string(raw))
}
