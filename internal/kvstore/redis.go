// redis.go
package kvstore

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Canal pub/sub por el que cada escritor anuncia la clave modificada.
const changeChannel = "titanpc:kv:changes"

// RedisStore implementa el puerto sobre Redis. Las notificaciones de cambio
// viajan por pub/sub, de modo que varias instancias (o pestañas, a través del
// gateway) observan las escrituras ajenas y recargan su estado.
type RedisStore struct {
	client *redis.Client

	subMu   sync.Mutex
	subs    map[int]func(string)
	next    int
	started bool
	cancel  context.CancelFunc
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		subs:   map[int]func(string){},
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoValue
	}
	return v, err
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return err
	}
	r.publish(ctx, key)
	return nil
}

func (r *RedisStore) SetTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return err
	}
	r.publish(ctx, key)
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	r.publish(ctx, key)
	return nil
}

func (r *RedisStore) publish(ctx context.Context, key string) {
	// Mejor esfuerzo: una notificación perdida solo retrasa la recarga.
	if err := r.client.Publish(ctx, changeChannel, key).Err(); err != nil {
		log.Println("kvstore: error publicando cambio:", err)
	}
}

func (r *RedisStore) Subscribe(fn func(string)) func() {
	r.subMu.Lock()
	id := r.next
	r.next++
	r.subs[id] = fn
	if !r.started {
		r.started = true
		ctx, cancel := context.WithCancel(context.Background())
		r.cancel = cancel
		go r.listen(ctx)
	}
	r.subMu.Unlock()

	return func() {
		r.subMu.Lock()
		delete(r.subs, id)
		r.subMu.Unlock()
	}
}

func (r *RedisStore) listen(ctx context.Context) {
	pubsub := r.client.Subscribe(ctx, changeChannel)
	defer pubsub.Close()

	// Cerrar el pubsub al cancelar el contexto termina el range de abajo.
	go func() {
		<-ctx.Done()
		pubsub.Close()
	}()

	for msg := range pubsub.Channel() {
		r.subMu.Lock()
		fns := make([]func(string), 0, len(r.subs))
		for _, fn := range r.subs {
			fns = append(fns, fn)
		}
		r.subMu.Unlock()

		for _, fn := range fns {
			fn(msg.Payload)
		}
	}
}

// Close detiene el listener de pub/sub. Un Subscribe posterior lo vuelve a
// arrancar.
func (r *RedisStore) Close() {
	r.subMu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.started = false
	r.subMu.Unlock()
}
