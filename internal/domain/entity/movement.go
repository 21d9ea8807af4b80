package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType reporta si el tipo es IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// Movement representa un movimiento de stock (entrada o salida) contra un producto.
// Los movimientos son inmutables y append-only: son la única fuente de verdad del stock;
// una corrección se hace registrando el movimiento opuesto, nunca mutando el historial.
type Movement struct {
	ID        int64
	ProductID int64
	Type      string // IN u OUT
	Quantity  int64  // estrictamente positiva
	CreatedAt time.Time
}
