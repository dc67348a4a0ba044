package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanpc-store/internal/kvstore"
)

func TestCartAddAndQuantity(t *testing.T) {
	c := NewCart(kvstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "titan-pro", 1))
	require.NoError(t, c.Add(ctx, "titan-pro", 2))
	assert.Equal(t, 3, c.Quantity("titan-pro"))

	require.NoError(t, c.SetQuantity(ctx, "titan-pro", 1))
	assert.Equal(t, 1, c.Quantity("titan-pro"))

	require.NoError(t, c.SetQuantity(ctx, "titan-pro", 0))
	assert.Equal(t, 0, c.Quantity("titan-pro"))
	assert.Empty(t, c.Items())
}

func TestCartClear(t *testing.T) {
	c := NewCart(kvstore.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, "a", 1))
	require.NoError(t, c.Add(ctx, "b", 2))
	require.NoError(t, c.Clear(ctx))
	assert.Empty(t, c.Items())
}

func TestCartLastWriteWinsAcrossInstances(t *testing.T) {
	// Dos instancias sobre el mismo almacén simulan dos pestañas: la
	// escritura de una sobreescribe el estado en memoria de la otra.
	kv := kvstore.NewMemoryStore()
	a := NewCart(kv)
	b := NewCart(kv)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx, "titan-pro", 2))
	assert.Equal(t, 2, b.Quantity("titan-pro"))

	require.NoError(t, b.Clear(ctx))
	assert.Empty(t, a.Items())
}

func TestCartObserverNotified(t *testing.T) {
	c := NewCart(kvstore.NewMemoryStore())

	calls := 0
	unsubscribe := c.Subscribe(func() { calls++ })
	require.NoError(t, c.Add(context.Background(), "titan-pro", 1))
	assert.Greater(t, calls, 0)

	unsubscribe()
	before := calls
	require.NoError(t, c.Add(context.Background(), "titan-pro", 1))
	assert.Equal(t, before, calls)
}

func TestCartObserverNotifiedOncePerChange(t *testing.T) {
	// Un cambio propio produce exactamente un aviso: la escritura al almacén
	// dispara la suscripción, y persist no vuelve a notificar por su cuenta.
	c := NewCart(kvstore.NewMemoryStore())

	calls := 0
	c.Subscribe(func() { calls++ })

	require.NoError(t, c.Add(context.Background(), "titan-pro", 1))
	assert.Equal(t, 1, calls)

	require.NoError(t, c.SetQuantity(context.Background(), "titan-pro", 5))
	assert.Equal(t, 2, calls)
}

func TestWishlistObserverNotifiedOncePerToggle(t *testing.T) {
	w := NewWishlist(kvstore.NewMemoryStore())

	calls := 0
	w.Subscribe(func() { calls++ })

	_, err := w.Toggle(context.Background(), "titan-ultra")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCartCorruptBlobFallsBackToEmpty(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), "titanpc_cart", "###"))

	c := NewCart(kv)
	assert.Empty(t, c.Items())
}

func TestWishlistToggle(t *testing.T) {
	w := NewWishlist(kvstore.NewMemoryStore())
	ctx := context.Background()

	added, err := w.Toggle(ctx, "titan-ultra")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, w.Has("titan-ultra"))

	removed, err := w.Toggle(ctx, "titan-ultra")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, w.Has("titan-ultra"))
}

func TestNotificationsPushAndRead(t *testing.T) {
	n := NewNotifications(kvstore.NewMemoryStore())
	ctx := context.Background()

	notif, err := n.Push(ctx, "Tu pedido ha sido enviado")
	require.NoError(t, err)

	list, err := n.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Read)

	require.NoError(t, n.MarkRead(ctx, notif.ID))
	list, err = n.List(ctx)
	require.NoError(t, err)
	assert.True(t, list[0].Read)

	require.NoError(t, n.Clear(ctx))
	list, err = n.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecentDedupesAndCaps(t *testing.T) {
	r := NewRecent(kvstore.NewMemoryStore())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "a"} {
		require.NoError(t, r.Track(ctx, id))
	}
	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, ids)

	for i := 0; i < 12; i++ {
		require.NoError(t, r.Track(ctx, string(rune('d'+i))))
	}
	ids, err = r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 8)
}
