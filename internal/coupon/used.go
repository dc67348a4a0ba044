// used.go
package coupon

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"titanpc-store/internal/kvstore"
)

const usedKey = "titanpc_used_coupons"

// UsedStore registra en el almacén clave-valor los códigos ya canjeados por
// el usuario. Las escrituras son re-sets idempotentes de la lista completa.
type UsedStore struct {
	kv kvstore.Store
}

func NewUsedStore(kv kvstore.Store) *UsedStore {
	return &UsedStore{kv: kv}
}

func (u *UsedStore) List(ctx context.Context) ([]string, error) {
	raw, err := u.kv.Get(ctx, usedKey)
	if errors.Is(err, kvstore.ErrNoValue) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		// Blob corrupto: se trata como ausencia de datos.
		return []string{}, nil
	}
	return codes, nil
}

func (u *UsedStore) IsUsed(ctx context.Context, code string) (bool, error) {
	codes, err := u.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range codes {
		if strings.EqualFold(c, code) {
			return true, nil
		}
	}
	return false, nil
}

// MarkUsed añade el código (normalizado a mayúsculas) si no estaba ya.
func (u *UsedStore) MarkUsed(ctx context.Context, code string) error {
	used, err := u.IsUsed(ctx, code)
	if err != nil {
		return err
	}
	if used {
		return nil
	}

	codes, err := u.List(ctx)
	if err != nil {
		return err
	}
	codes = append(codes, strings.ToUpper(code))

	raw, err := json.Marshal(codes)
	if err != nil {
		return err
	}
	return u.kv.Set(ctx, usedKey, string(raw))
}

// Clear borra el registro completo (acción directa del usuario).
func (u *UsedStore) Clear(ctx context.Context) error {
	return u.kv.Remove(ctx, usedKey)
}
