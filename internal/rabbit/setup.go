// setup.go
package rabbit

import (
	"log"

	"titanpc-store/internal/service"

	"github.com/rabbitmq/amqp091-go"
)

func SetupConsumers(ch *amqp091.Channel, orders *service.OrderService) {
	consumer := NewCheckoutCompletedConsumer(orders)

	// 1. Declarar la queue
	q, err := ch.QueueDeclare(
		"titanpc_store_checkouts", // cola exclusiva de este servicio
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("Error declarando queue:", err)
		return
	}

	// 2. Bindear al exchange fanout
	err = ch.QueueBind(
		q.Name,
		"",                   // fanout ignora routing key
		"checkout_completed", // lo publica el proveedor de pago
		false,
		nil,
	)
	if err != nil {
		log.Println("Error binding exchange:", err)
		return
	}

	// 3. Consumir
	msgs, err := ch.Consume(
		q.Name,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Println("Error al consumir queue:", err)
		return
	}

	go func() {
		for m := range msgs {
			consumer.Handle(m.Body)
		}
	}()

	log.Println("Suscrito a exchange checkout_completed (fanout)")
}
