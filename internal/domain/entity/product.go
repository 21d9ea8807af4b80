package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// El stock NO se persiste aquí: se deriva siempre de los movimientos.
type Product struct {
	ID        int64
	UUID      string // identificador externo estable
	Name      string
	Cost      decimal.Decimal
	Price     decimal.Decimal
	Barcode   *string // código de barras, único y opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
