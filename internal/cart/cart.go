// Package cart contiene los almacenes de estado de cliente (carrito,
// wishlist, notificaciones, vistos recientemente) como objetos explícitos
// sobre el puerto clave-valor, con notificación a suscriptores en cada
// cambio. Una escritura externa observada sobreescribe el estado en memoria
// (last-write-wins, sin detección de conflictos).
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"titanpc-store/internal/kvstore"
)

const cartKey = "titanpc_cart"

// Cart mantiene productId → cantidad.
type Cart struct {
	kv kvstore.Store

	mu    sync.RWMutex
	items map[string]int

	observers *observers
}

func NewCart(kv kvstore.Store) *Cart {
	c := &Cart{kv: kv, items: map[string]int{}, observers: newObservers()}
	c.reload()

	kv.Subscribe(func(key string) {
		if key != cartKey {
			return
		}
		c.reload()
		c.observers.notify()
	})
	return c
}

// reload sobreescribe el estado en memoria con lo que haya en el almacén.
// JSON corrupto o ausente equivale a carrito vacío.
func (c *Cart) reload() {
	raw, err := c.kv.Get(context.Background(), cartKey)
	items := map[string]int{}
	if err == nil {
		if jsonErr := json.Unmarshal([]byte(raw), &items); jsonErr != nil {
			items = map[string]int{}
		}
	} else if !errors.Is(err, kvstore.ErrNoValue) {
		log.Println("cart: error leyendo almacén:", err)
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Items devuelve una copia del contenido actual.
func (c *Cart) Items() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]int, len(c.items))
	for k, v := range c.items {
		out[k] = v
	}
	return out
}

func (c *Cart) Quantity(productID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[productID]
}

// Add incrementa la cantidad del producto.
func (c *Cart) Add(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	c.mu.Lock()
	c.items[productID] += qty
	c.mu.Unlock()
	return c.persist(ctx)
}

// SetQuantity fija la cantidad; 0 o menos elimina el producto.
func (c *Cart) SetQuantity(ctx context.Context, productID string, qty int) error {
	c.mu.Lock()
	if qty <= 0 {
		delete(c.items, productID)
	} else {
		c.items[productID] = qty
	}
	c.mu.Unlock()
	return c.persist(ctx)
}

func (c *Cart) Remove(ctx context.Context, productID string) error {
	c.mu.Lock()
	delete(c.items, productID)
	c.mu.Unlock()
	return c.persist(ctx)
}

func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.items = map[string]int{}
	c.mu.Unlock()
	return c.persist(ctx)
}

// persist re-escribe el objeto completo (escritura idempotente). No notifica:
// la suscripción al almacén es el único camino de notificación, de modo que
// cambios propios y externos producen exactamente un aviso.
func (c *Cart) persist(ctx context.Context) error {
	c.mu.RLock()
	raw, err := json.Marshal(c.items)
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, cartKey, string(raw))
}

// Subscribe registra un observador que se invoca tras cada cambio, propio o
// externo. Devuelve la función de baja.
func (c *Cart) Subscribe(fn func()) func() {
	return c.observers.add(fn)
}

// observers es el patrón observador compartido por los almacenes del paquete.
type observers struct {
	mu   sync.Mutex
	fns  map[int]func()
	next int
}

func newObservers() *observers {
	return &observers{fns: map[int]func(){}}
}

func (o *observers) add(fn func()) func() {
	o.mu.Lock()
	id := o.next
	o.next++
	o.fns[id] = fn
	o.mu.Unlock()
	return func() {
		o.mu.Lock()
		delete(o.fns, id)
		o.mu.Unlock()
	}
}

func (o *observers) notify() {
	o.mu.Lock()
	fns := make([]func(), 0, len(o.fns))
	for _, fn := range o.fns {
		fns = append(fns, fn)
	}
	o.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
