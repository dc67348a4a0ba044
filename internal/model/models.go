// models.go
package model

import "time"

// Product es una entrada del catálogo estático. Inmutable en runtime.
type Product struct {
	ID      string   `bson:"id" json:"id"`
	Slug    string   `bson:"slug" json:"slug"`
	Name    string   `bson:"name" json:"name"`
	Price   float64  `bson:"price" json:"price"` // EUR, unidades decimales
	Image   string   `bson:"image" json:"image"`
	Images  []string `bson:"images,omitempty" json:"images,omitempty"`
	Specs   []string `bson:"specs" json:"specs"` // texto libre con prefijo: "GPU ...", "CPU ..."
	Tag     string   `bson:"tag,omitempty" json:"tag,omitempty"`
	Rating  float64  `bson:"rating,omitempty" json:"rating,omitempty"` // 0–5
	InStock bool     `bson:"in_stock" json:"inStock"`
	Desc    string   `bson:"desc,omitempty" json:"desc,omitempty"`
}

// BenchmarkRecord agrupa las métricas estáticas de rendimiento de un producto.
// Los subcampos de rating/score están acotados a [0,100]; FPS, consumo
// y €/FPS son positivos sin cota superior.
type BenchmarkRecord struct {
	ProductID  string          `json:"productId"`
	Gaming     GamingMetrics   `json:"gaming"`
	Synthetic  SyntheticScores `json:"synthetic"`
	Efficiency Efficiency      `json:"efficiency"`
	Features   FeatureRatings  `json:"features"`
	UseCases   UseCaseScores   `json:"useCases"`
}

type GamingMetrics struct {
	FPS1080p float64 `json:"fps1080p"`
	FPS1440p float64 `json:"fps1440p"`
	FPS4K    float64 `json:"fps4k"`
}

type SyntheticScores struct {
	TimeSpy      int `json:"timeSpy"`
	FireStrike   int `json:"fireStrike"`
	CinebenchR23 int `json:"cinebenchR23"`
}

type Efficiency struct {
	PricePerFPS1440p float64 `json:"pricePerFps1440p"` // €/FPS a 1440p
	PowerDraw        float64 `json:"powerDraw"`        // vatios
	Thermals         float64 `json:"thermals"`         // 0–100
}

type FeatureRatings struct {
	Cooling       float64 `json:"cooling"`
	BuildQuality  float64 `json:"buildQuality"`
	Upgradability float64 `json:"upgradability"`
	Aesthetics    float64 `json:"aesthetics"`
	FutureProof   float64 `json:"futureProof"`
}

type UseCaseScores struct {
	Gaming    float64 `json:"gaming"`
	Streaming float64 `json:"streaming"`
	Editing   float64 `json:"editing"`
	Work      float64 `json:"work"`
}

// Coupon define una regla de descuento. El código es único e insensible a
// mayúsculas.
type Coupon struct {
	Code               string    `bson:"code" json:"code"`
	Type               string    `bson:"type" json:"type"` // "percentage" | "fixed"
	Value              float64   `bson:"value" json:"value"`
	MinAmount          float64   `bson:"min_amount,omitempty" json:"minAmount,omitempty"`
	MaxDiscount        float64   `bson:"max_discount,omitempty" json:"maxDiscount,omitempty"`
	ValidFrom          time.Time `bson:"valid_from" json:"validFrom"`
	ValidUntil         time.Time `bson:"valid_until" json:"validUntil"`
	UsageLimit         int       `bson:"usage_limit,omitempty" json:"usageLimit,omitempty"` // 0 = sin límite
	UsedCount          int       `bson:"used_count" json:"usedCount"`
	Active             bool      `bson:"active" json:"active"`
	ApplicableProducts []string  `bson:"applicable_products,omitempty" json:"applicableProducts,omitempty"`
}

const (
	CouponPercentage = "percentage"
	CouponFixed      = "fixed"
)

// OrderStatus es el estado de una orden. Seis valores fijos.
type OrderStatus string

const (
	StatusConfirmado OrderStatus = "confirmado"
	StatusPreparando OrderStatus = "preparando"
	StatusEnviado    OrderStatus = "enviado"
	StatusEnReparto  OrderStatus = "en_reparto"
	StatusEntregado  OrderStatus = "entregado"
	StatusCancelado  OrderStatus = "cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusConfirmado, StatusPreparando, StatusEnviado,
		StatusEnReparto, StatusEntregado, StatusCancelado:
		return true
	}
	return false
}

type Order struct {
	ID                     string          `bson:"id" json:"id"`
	SessionID              string          `bson:"session_id" json:"sessionId"`
	Fecha                  time.Time       `bson:"fecha" json:"fecha"`
	Total                  float64         `bson:"total" json:"total"`
	Estado                 OrderStatus     `bson:"estado" json:"estado"`
	NumeroSeguimiento      string          `bson:"numero_seguimiento" json:"numeroSeguimiento"`
	CustomerEmail          string          `bson:"customer_email" json:"customerEmail"`
	ShippingAddress        ShippingAddress `bson:"shipping_address" json:"shippingAddress"`
	Productos              []OrderItem     `bson:"productos" json:"productos"`
	Eventos                []TrackingEvent `bson:"eventos" json:"eventos"`
	FechaEntregadaEstimada *time.Time      `bson:"fecha_entregada_estimada,omitempty" json:"fechaEntregadaEstimada,omitempty"`
	Transportista          string          `bson:"transportista,omitempty" json:"transportista,omitempty"`
	CreatedAt              time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt              time.Time       `bson:"updated_at" json:"updatedAt"`
}

type ShippingAddress struct {
	AddressLine1 string `bson:"address_line1" json:"addressLine1"`
	City         string `bson:"city" json:"city"`
	PostalCode   string `bson:"postal_code" json:"postalCode"`
	Province     string `bson:"province" json:"province"`
	Country      string `bson:"country" json:"country"`
	Comments     string `bson:"comments,omitempty" json:"comments,omitempty"`
}

type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// TrackingEvent es un hito del historial de entrega. La lista es append-only:
// nunca se reordena ni se borra.
type TrackingEvent struct {
	Fecha       time.Time `bson:"fecha" json:"fecha"`
	Descripcion string    `bson:"descripcion" json:"descripcion"`
	Ubicacion   string    `bson:"ubicacion" json:"ubicacion"`
	Completado  bool      `bson:"completado" json:"completado"`
}

// SavedComparison es una comparativa guardada por el usuario (máx. 3 productos).
type SavedComparison struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Products  []string  `json:"products"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Review struct {
	ID        string    `bson:"id" json:"id"`
	ProductID string    `bson:"product_id" json:"productId"`
	UserID    string    `bson:"user_id" json:"userId"`
	UserName  string    `bson:"user_name" json:"userName"`
	Rating    int       `bson:"rating" json:"rating"` // 1–5
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Comment   string    `bson:"comment" json:"comment"`
	Verified  bool      `bson:"verified" json:"verified"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
