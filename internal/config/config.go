// config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDBName   string
	RedisURL      string
	AuthURL       string
	RabbitURL     string
	PaymentURL    string
	PaymentAPIKey string
	SuccessURL    string
	CancelURL     string
	Port          string
}

func Load() *Config {
	// .env opcional para desarrollo local
	_ = godotenv.Load()

	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://host.docker.internal:27017"),
		MongoDBName:   getEnv("MONGO_DB_NAME", "titanpc_store"),
		RedisURL:      getEnv("REDIS_URL", ""),
		AuthURL:       getEnv("AUTH_URL", "http://host.docker.internal:3000"),
		RabbitURL:     getEnv("RABBIT_URL", "amqp://host.docker.internal"),
		PaymentURL:    getEnv("PAYMENT_URL", "https://api.payment.example"),
		PaymentAPIKey: getEnv("PAYMENT_API_KEY", ""),
		SuccessURL:    getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/pedido-confirmado"),
		CancelURL:     getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/carrito"),
		Port:          getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
