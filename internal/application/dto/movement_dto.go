package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
type CreateMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockResponse stock derivado de un producto.
type StockResponse struct {
	ProductID int64 `json:"product_id"`
	Stock     int64 `json:"stock"`
}

// ProductStockResponse entrada del listado global de stock.
type ProductStockResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
}

// InsufficientStockResponse error de stock insuficiente con cantidades para diagnóstico.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Current   int64  `json:"current"`
	Requested int64  `json:"requested"`
}
