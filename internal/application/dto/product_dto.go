package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	Cost    decimal.Decimal `json:"cost" validate:"min=0"`
	Price   decimal.Decimal `json:"price" validate:"min=0"`
	Barcode *string         `json:"barcode,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Cost    *decimal.Decimal `json:"cost"`
	Price   *decimal.Decimal `json:"price"`
	Barcode *string          `json:"barcode"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	Price     decimal.Decimal `json:"price"`
	Barcode   *string         `json:"barcode"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
