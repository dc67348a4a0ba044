package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"titanpc-store/internal/model"
)

// Interfaz que debe implementar repository
type OrderRepository interface {
	Save(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByTrackingNumber(ctx context.Context, tracking string) (*model.Order, error)
	FindBySessionID(ctx context.Context, sessionID string) (*model.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id string, estado model.OrderStatus, event model.TrackingEvent) error
	AppendEvent(ctx context.Context, id string, event model.TrackingEvent) error
	UpdateShippingAddress(ctx context.Context, id string, addr model.ShippingAddress) error
}

// Errores de negocio exportados (los usa el controller)
var (
	ErrInvalidStatus      = errors.New("estado de orden no válido")
	ErrFinalState         = errors.New("la orden está en un estado final")
	ErrOrderAlreadyExists = errors.New("la orden ya fue creada para esa sesión de pago")
	ErrEmptyOrder         = errors.New("la orden no tiene productos")
)

// Estados finales: una vez alcanzados, el estado no cambia más. El historial
// de eventos sigue siendo append-only en cualquier estado.
var finalStates = map[model.OrderStatus]bool{
	model.StatusEntregado: true,
	model.StatusCancelado: true,
}

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(r OrderRepository) *OrderService {
	return &OrderService{repo: r}
}

// CreateFromCheckout materializa la orden al completarse un pago. Una sesión
// de pago produce como máximo una orden: reintentos del webhook o del
// consumer no duplican.
func (s *OrderService) CreateFromCheckout(ctx context.Context, sessionID, customerEmail string, addr model.ShippingAddress, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	existing, err := s.repo.FindBySessionID(ctx, sessionID)
	if err == nil && existing != nil {
		return nil, ErrOrderAlreadyExists
	}

	now := time.Now().UTC()
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	estimada := now.AddDate(0, 0, 5)
	order := &model.Order{
		ID:                     uuid.NewString(),
		SessionID:              sessionID,
		Fecha:                  now,
		Total:                  total,
		Estado:                 model.StatusConfirmado,
		NumeroSeguimiento:      newTrackingNumber(),
		CustomerEmail:          customerEmail,
		ShippingAddress:        addr,
		Productos:              items,
		FechaEntregadaEstimada: &estimada,
		Transportista:          "SEUR",
		Eventos: []model.TrackingEvent{
			{
				Fecha:       now,
				Descripcion: "Pedido confirmado",
				Ubicacion:   "TITAN-PC, Madrid",
				Completado:  true,
			},
		},
	}

	return order, s.repo.Save(ctx, order)
}

// newTrackingNumber genera un número de seguimiento legible, p. ej.
// TPC-1A2B3C4D.
func newTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TPC-" + raw[:8]
}

// Getters
func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) GetByTrackingNumber(ctx context.Context, tracking string) (*model.Order, error) {
	return s.repo.FindByTrackingNumber(ctx, tracking)
}

func (s *OrderService) GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	return s.repo.FindBySessionID(ctx, sessionID)
}

func (s *OrderService) GetByCustomerEmail(ctx context.Context, email string) ([]*model.Order, error) {
	return s.repo.FindByCustomerEmail(ctx, email)
}

// GetAll lista todas las órdenes (panel de administración).
func (s *OrderService) GetAll(ctx context.Context) ([]*model.Order, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus cambia el estado y registra el evento de seguimiento. Las
// órdenes solo se anexan: nada se borra ni se reordena.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, nuevo model.OrderStatus, descripcion, ubicacion string) error {
	if !nuevo.Valid() {
		return ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if order.Estado == nuevo {
		return nil
	}
	if finalStates[order.Estado] {
		return ErrFinalState
	}

	if descripcion == "" {
		descripcion = defaultEventDescription(nuevo)
	}

	event := model.TrackingEvent{
		Fecha:       time.Now().UTC(),
		Descripcion: descripcion,
		Ubicacion:   ubicacion,
		Completado:  true,
	}
	return s.repo.UpdateStatus(ctx, id, nuevo, event)
}

func defaultEventDescription(s model.OrderStatus) string {
	switch s {
	case model.StatusPreparando:
		return "Preparando tu equipo"
	case model.StatusEnviado:
		return "Pedido enviado"
	case model.StatusEnReparto:
		return "En reparto"
	case model.StatusEntregado:
		return "Entregado"
	case model.StatusCancelado:
		return "Pedido cancelado"
	}
	return string(s)
}

// AppendTrackingEvent añade un hito de entrega sin cambiar el estado.
func (s *OrderService) AppendTrackingEvent(ctx context.Context, id, descripcion, ubicacion string, completado bool) error {
	event := model.TrackingEvent{
		Fecha:       time.Now().UTC(),
		Descripcion: descripcion,
		Ubicacion:   ubicacion,
		Completado:  completado,
	}
	return s.repo.AppendEvent(ctx, id, event)
}

// UpdateShippingAddress edita la dirección mientras la orden siga viva.
func (s *OrderService) UpdateShippingAddress(ctx context.Context, id string, addr model.ShippingAddress) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if finalStates[order.Estado] {
		return ErrFinalState
	}
	return s.repo.UpdateShippingAddress(ctx, id, addr)
}
