package inventory

import "github.com/tu-usuario/stock-tracker/internal/domain/entity"

// StockBalance implementa la contabilidad de stock (servicio de dominio).
// Stock = Σ(cantidades IN) - Σ(cantidades OUT). Función pura sobre los agregados
// por tipo; un tipo sin movimientos aporta cero, nunca es error.
func StockBalance(sumsByType map[string]int64) int64 {
	return sumsByType[entity.MovementTypeIN] - sumsByType[entity.MovementTypeOUT]
}
