package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"titanpc-store/internal/cart"
	"titanpc-store/internal/compare"
	"titanpc-store/internal/config"
	"titanpc-store/internal/controller"
	"titanpc-store/internal/coupon"
	"titanpc-store/internal/kvstore"
	"titanpc-store/internal/middleware"
	"titanpc-store/internal/payment"
	"titanpc-store/internal/rabbit"
	"titanpc-store/internal/repository"
	"titanpc-store/internal/service"
	"titanpc-store/internal/session"
)

func main() {
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Almacén clave-valor: Redis si hay URL, memoria si no (desarrollo)
	var kv kvstore.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		kv = kvstore.NewRedisStore(redis.NewClient(opts))
	} else {
		log.Println("REDIS_URL no configurada, usando almacén en memoria")
		kv = kvstore.NewMemoryStore()
	}

	// Repositorios y servicios
	orderRepo := repository.NewMongoOrderRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)

	validator := coupon.NewValidator(coupon.ActiveCoupons())
	provider := payment.NewHTTPProvider(cfg.PaymentURL, cfg.PaymentAPIKey)

	orderService := service.NewOrderService(orderRepo)
	reviewService := service.NewReviewService(reviewRepo, orderRepo)
	checkoutService := service.NewCheckoutService(provider, validator, cfg.SuccessURL, cfg.CancelURL)
	authService := service.NewAuthService(cfg.AuthURL)

	// Almacenes de estado de cliente
	carrito := cart.NewCart(kv)
	wishlist := cart.NewWishlist(kv)
	notifications := cart.NewNotifications(kv)
	recent := cart.NewRecent(kv)
	sessions := session.NewManager(kv)
	comparisons := compare.NewStore(kv)
	usedCoupons := coupon.NewUsedStore(kv)

	// Handlers
	productCtl := controller.NewProductController(recent, sessions)
	compareCtl := controller.NewCompareController(comparisons)
	couponCtl := controller.NewCouponController(validator, usedCoupons)
	cartCtl := controller.NewCartController(carrito, wishlist, notifications)
	checkoutCtl := controller.NewCheckoutController(checkoutService, orderService)
	orderCtl := controller.NewOrderController(orderService)
	reviewCtl := controller.NewReviewController(reviewService)

	// Router
	r := gin.Default()

	// Rutas públicas
	r.GET("/products", productCtl.List)
	r.GET("/products/recent", productCtl.RecentlyViewed)
	r.GET("/products/:slug", productCtl.BySlug)
	r.POST("/products/:slug/view", productCtl.TrackView)
	r.GET("/products/:slug/reviews", reviewCtl.ListByProduct)

	r.POST("/compare", compareCtl.Compare)
	r.GET("/comparisons", compareCtl.List)
	r.POST("/comparisons", compareCtl.Save)
	r.PATCH("/comparisons/:id", compareCtl.Update)
	r.DELETE("/comparisons/:id", compareCtl.Delete)
	r.GET("/comparisons/:id/export", compareCtl.Export)

	r.POST("/coupons/validate", couponCtl.Validate)
	r.POST("/coupons/:code/redeem", couponCtl.Redeem)
	r.GET("/coupons/used", couponCtl.ListUsed)

	r.GET("/cart", cartCtl.Get)
	r.POST("/cart/items", cartCtl.AddItem)
	r.PUT("/cart/items/:productId", cartCtl.SetQuantity)
	r.DELETE("/cart/items/:productId", cartCtl.RemoveItem)
	r.DELETE("/cart", cartCtl.Clear)
	r.GET("/wishlist", cartCtl.GetWishlist)
	r.POST("/wishlist/:productId/toggle", cartCtl.ToggleWishlist)
	r.GET("/notifications", cartCtl.ListNotifications)
	r.POST("/notifications/:id/read", cartCtl.MarkNotificationRead)
	r.DELETE("/notifications", cartCtl.ClearNotifications)

	r.POST("/checkout", checkoutCtl.CreateSession)
	r.POST("/checkout/complete", checkoutCtl.Complete)

	// Seguimiento público (sin sesión, como el enlace del email)
	r.GET("/tracking/:numero", orderCtl.GetByTracking)
	r.GET("/orders/by-session/:sessionId", orderCtl.GetBySession)
	r.GET("/orders/:orderId", orderCtl.GetByID)

	// Rutas protegidas (requieren token)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))

	auth.GET("/orders", orderCtl.GetMine)
	auth.PATCH("/orders/:orderId/shipping", orderCtl.UpdateShipping)
	auth.POST("/reviews", reviewCtl.Create)
	auth.PUT("/reviews/:id", reviewCtl.Update)
	auth.DELETE("/reviews/:id", reviewCtl.Delete)

	// Rutas admin
	admin := auth.Group("/admin")
	admin.Use(middleware.AdminOnly())
	admin.GET("/orders", orderCtl.ListAll)
	admin.PATCH("/orders/:orderId/status", orderCtl.UpdateStatus)
	admin.POST("/orders/:orderId/events", orderCtl.AppendEvent)

	// Conexión a RabbitMQ
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Error conectando a RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error creando canal en RabbitMQ: %v", err)
	}

	rabbit.SetupConsumers(ch, orderService)

	// Ejecutar servidor
	log.Printf("TITAN-PC store ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
