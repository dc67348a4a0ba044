// Package kvstore define el puerto de persistencia clave-valor del
// storefront: blobs JSON con clave string para carrito, wishlist,
// comparativas guardadas, cupones usados y sesión de navegación, con
// notificación de cambios entre pestañas/instancias.
package kvstore

import (
	"context"
	"errors"
	"time"
)

// ErrNoValue indica que la clave no existe (o expiró).
var ErrNoValue = errors.New("clave sin valor")

// Store es el contrato del colaborador de persistencia. Las escrituras son
// re-sets idempotentes de objetos completos; escrituras concurrentes se
// resuelven last-write-wins vía la notificación de cambio.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetTTL escribe con expiración (p. ej. la sesión de navegación de 30 min).
	SetTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
	// Subscribe registra un callback que recibe la clave modificada por
	// cualquier escritor. Devuelve la función de baja.
	Subscribe(fn func(key string)) (unsubscribe func())
}
