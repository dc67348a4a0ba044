// wishlist.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"titanpc-store/internal/kvstore"
)

const wishlistKey = "titanpc_wishlist"

// Wishlist es el conjunto ordenado de productos favoritos.
type Wishlist struct {
	kv kvstore.Store

	mu  sync.RWMutex
	ids []string

	observers *observers
}

func NewWishlist(kv kvstore.Store) *Wishlist {
	w := &Wishlist{kv: kv, observers: newObservers()}
	w.reload()

	kv.Subscribe(func(key string) {
		if key != wishlistKey {
			return
		}
		w.reload()
		w.observers.notify()
	})
	return w
}

func (w *Wishlist) reload() {
	raw, err := w.kv.Get(context.Background(), wishlistKey)
	var ids []string
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &ids); jsonErr != nil {
			ids = nil
		}
	} else if !errors.Is(err, kvstore.ErrNoValue) {
		log.Println("wishlist: error leyendo almacén:", err)
	}

	w.mu.Lock()
	w.ids = ids
	w.mu.Unlock()
}

func (w *Wishlist) List() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string{}, w.ids...)
}

func (w *Wishlist) Has(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, id := range w.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// Toggle añade o quita el producto y devuelve si quedó dentro.
func (w *Wishlist) Toggle(ctx context.Context, productID string) (bool, error) {
	w.mu.Lock()
	found := false
	kept := w.ids[:0]
	for _, id := range w.ids {
		if id == productID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		kept = append(kept, productID)
	}
	w.ids = kept
	w.mu.Unlock()

	if err := w.persist(ctx); err != nil {
		return false, err
	}
	return !found, nil
}

// persist no notifica: la suscripción al almacén es el único camino de aviso.
func (w *Wishlist) persist(ctx context.Context) error {
	w.mu.RLock()
	raw, err := json.Marshal(w.ids)
	w.mu.RUnlock()
	if err != nil {
		return err
	}
	return w.kv.Set(ctx, wishlistKey, string(raw))
}

func (w *Wishlist) Subscribe(fn func()) func() {
	return w.observers.add(fn)
}
