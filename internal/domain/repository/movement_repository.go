package repository

import (
	"context"

	"github.com/tu-usuario/stock-tracker/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Los movimientos son append-only: no existe Update ni Delete.
type MovementRepository interface {
	// Create inserta el movimiento; el servidor asigna ID y CreatedAt (RETURNING).
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	// List devuelve movimientos ordenados por fecha de creación descendente.
	List(ctx context.Context, limit, offset int) ([]*entity.Movement, error)
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error)
	// SumByType agrega las cantidades de un producto agrupadas por tipo (IN/OUT).
	SumByType(ctx context.Context, productID int64) (map[string]int64, error)
	// ExistsByProduct reporta si el producto tiene movimientos (bloquea su borrado).
	ExistsByProduct(ctx context.Context, productID int64) (bool, error)
}
