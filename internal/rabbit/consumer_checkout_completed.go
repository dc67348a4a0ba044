package rabbit

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"titanpc-store/internal/catalog"
	"titanpc-store/internal/dto"
	"titanpc-store/internal/model"
	"titanpc-store/internal/service"
)

type CheckoutCompletedConsumer struct {
	Orders *service.OrderService
}

func NewCheckoutCompletedConsumer(s *service.OrderService) *CheckoutCompletedConsumer {
	return &CheckoutCompletedConsumer{Orders: s}
}

// Mensaje publicado por la pasarela al confirmarse el cobro. El webhook HTTP
// recibe el mismo payload; ambas vías son idempotentes por sessionId.
type CheckoutCompletedMessage struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	RoutingKey    string `json:"routing_key"`
	Message       struct {
		SessionID string             `json:"sessionId"`
		Email     string             `json:"email"`
		Shipping  dto.ShippingDTO    `json:"shipping"`
		Items     []dto.OrderItemDTO `json:"items"`
	} `json:"message"`
}

func (c *CheckoutCompletedConsumer) Handle(msg []byte) error {
	log.Println("[Rabbit] Evento recibido: checkout_completed")

	var event CheckoutCompletedMessage
	if err := json.Unmarshal(msg, &event); err != nil {
		log.Println("Error parseando mensaje:", err)
		return err
	}

	items := make([]model.OrderItem, 0, len(event.Message.Items))
	for _, it := range event.Message.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     catalog.PriceFromMinorUnits(it.UnitAmount),
			Quantity:  it.Quantity,
		})
	}

	addr := model.ShippingAddress{
		AddressLine1: event.Message.Shipping.AddressLine1,
		City:         event.Message.Shipping.City,
		PostalCode:   event.Message.Shipping.PostalCode,
		Province:     event.Message.Shipping.Province,
		Country:      event.Message.Shipping.Country,
		Comments:     event.Message.Shipping.Comments,
	}

	order, err := c.Orders.CreateFromCheckout(
		context.Background(),
		event.Message.SessionID,
		event.Message.Email,
		addr,
		items,
	)

	if errors.Is(err, service.ErrOrderAlreadyExists) {
		// Reentrega del broker: la orden ya existe, no es un fallo.
		log.Println("Orden ya creada para la sesión:", event.Message.SessionID)
		return nil
	}
	if err != nil {
		log.Println("Error creando orden desde checkout:", err)
		return err
	}

	log.Println("Orden creada desde checkout:", order.ID)
	return nil
}
