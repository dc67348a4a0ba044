// store.go
package compare

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"titanpc-store/internal/kvstore"
	"titanpc-store/internal/model"
)

const savedKey = "titanpc_saved_comparisons"

// Límites de las comparativas guardadas.
const (
	maxSaved = 10
)

var (
	ErrTooManyProducts    = errors.New("una comparativa admite como máximo 3 productos")
	ErrComparisonNotFound = errors.New("comparativa no encontrada")
)

// Store persiste las comparativas guardadas del usuario en el puerto
// clave-valor, limitadas a las 10 más recientes.
type Store struct {
	kv kvstore.Store
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// List devuelve las comparativas guardadas, más reciente primero. Un blob
// corrupto en el almacén se trata como ausencia de datos.
func (s *Store) List(ctx context.Context) ([]model.SavedComparison, error) {
	raw, err := s.kv.Get(ctx, savedKey)
	if errors.Is(err, kvstore.ErrNoValue) {
		return []model.SavedComparison{}, nil
	}
	if err != nil {
		return nil, err
	}

	var out []model.SavedComparison
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []model.SavedComparison{}, nil
	}
	return out, nil
}

// Save crea una comparativa nueva y la coloca al frente de la lista,
// descartando la más antigua si se supera el límite.
func (s *Store) Save(ctx context.Context, name string, productIDs []string) (*model.SavedComparison, error) {
	if len(productIDs) > MaxProducts {
		return nil, ErrTooManyProducts
	}

	existing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	saved := model.SavedComparison{
		ID:        uuid.NewString(),
		Name:      name,
		Products:  append([]string{}, productIDs...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	updated := append([]model.SavedComparison{saved}, existing...)
	if len(updated) > maxSaved {
		updated = updated[:maxSaved]
	}

	if err := s.write(ctx, updated); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update renombra o cambia la selección de una comparativa existente.
func (s *Store) Update(ctx context.Context, id, name string, productIDs []string) (*model.SavedComparison, error) {
	if len(productIDs) > MaxProducts {
		return nil, ErrTooManyProducts
	}

	existing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range existing {
		if existing[i].ID != id {
			continue
		}
		if name != "" {
			existing[i].Name = name
		}
		if productIDs != nil {
			existing[i].Products = append([]string{}, productIDs...)
		}
		existing[i].UpdatedAt = time.Now().UTC()

		if err := s.write(ctx, existing); err != nil {
			return nil, err
		}
		out := existing[i]
		return &out, nil
	}
	return nil, ErrComparisonNotFound
}

// Delete elimina una comparativa por id.
func (s *Store) Delete(ctx context.Context, id string) error {
	existing, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := existing[:0]
	found := false
	for _, c := range existing {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrComparisonNotFound
	}
	return s.write(ctx, kept)
}

func (s *Store) write(ctx context.Context, list []model.SavedComparison) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, savedKey, string(raw))
}
