// dto.go
package dto

// CheckoutRequest inicia la creación de una sesión de pago a partir del
// snapshot del carrito.
type CheckoutRequest struct {
	Items      map[string]int `json:"items" binding:"required"`
	Email      string         `json:"email" binding:"required,email"`
	CouponCode string         `json:"couponCode"`
}

type ValidateCouponRequest struct {
	Code       string   `json:"code" binding:"required"`
	CartTotal  float64  `json:"cartTotal" binding:"required"`
	ProductIDs []string `json:"productIds"`
}

// CompleteCheckoutRequest llega del webhook del proveedor de pago (o del
// consumer Rabbit) cuando el cobro se confirma.
type CompleteCheckoutRequest struct {
	SessionID string         `json:"sessionId" binding:"required"`
	Email     string         `json:"email" binding:"required,email"`
	Shipping  ShippingDTO    `json:"shipping"`
	Items     []OrderItemDTO `json:"items" binding:"required"`
}

// OrderItemDTO llega del proveedor de pago, que maneja importes en céntimos
// (igual que los recibe al crearse la sesión).
type OrderItemDTO struct {
	ProductID  string `json:"productId" binding:"required"`
	Name       string `json:"name"`
	UnitAmount int64  `json:"unitAmount"`
	Quantity   int    `json:"quantity"`
}

// ShippingDTO para la dirección y comentario
type ShippingDTO struct {
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Province     string `json:"province"`
	Country      string `json:"country"`
	Comments     string `json:"comments"`
}

type UpdateStatusRequest struct {
	Estado      string `json:"estado" binding:"required"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion"`
}

type TrackingEventRequest struct {
	Descripcion string `json:"descripcion" binding:"required"`
	Ubicacion   string `json:"ubicacion"`
	Completado  bool   `json:"completado"`
}

type ReviewRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Title     string `json:"title"`
	Comment   string `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Title   string `json:"title"`
	Comment string `json:"comment" binding:"required"`
}

type SaveComparisonRequest struct {
	Name     string   `json:"name" binding:"required"`
	Products []string `json:"products" binding:"required"`
}

type UpdateComparisonRequest struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

type CompareRequest struct {
	Products []string `json:"products" binding:"required"`
}

type CartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}
