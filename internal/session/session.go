// Package session gestiona el identificador de sesión de navegación usado
// para el tracking de vistas de producto. La sesión expira a los 30 minutos
// de inactividad; cada toque renueva el plazo.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"titanpc-store/internal/kvstore"
)

const viewSessionKey = "titanpc_view_session"

// InactivityTTL es la ventana de inactividad tras la que se genera una
// sesión nueva.
const InactivityTTL = 30 * time.Minute

type Manager struct {
	kv kvstore.Store
}

func NewManager(kv kvstore.Store) *Manager {
	return &Manager{kv: kv}
}

// Current devuelve el id de sesión vigente, creando uno nuevo si no existe o
// expiró, y renueva el plazo de inactividad.
func (m *Manager) Current(ctx context.Context) (string, error) {
	id, err := m.kv.Get(ctx, viewSessionKey)
	if errors.Is(err, kvstore.ErrNoValue) || (err == nil && id == "") {
		id = uuid.NewString()
	} else if err != nil {
		return "", err
	}

	if err := m.kv.SetTTL(ctx, viewSessionKey, id, InactivityTTL); err != nil {
		return "", err
	}
	return id, nil
}

// Reset descarta la sesión actual.
func (m *Manager) Reset(ctx context.Context) error {
	return m.kv.Remove(ctx, viewSessionKey)
}
