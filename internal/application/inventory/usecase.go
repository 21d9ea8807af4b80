package inventory

import (
	"context"

	"github.com/tu-usuario/stock-tracker/internal/application/dto"
	"github.com/tu-usuario/stock-tracker/internal/domain"
	"github.com/tu-usuario/stock-tracker/internal/domain/entity"
	domaininv "github.com/tu-usuario/stock-tracker/internal/domain/inventory"
	"github.com/tu-usuario/stock-tracker/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (IN/OUT) de forma transaccional.
// La validación de stock y la inserción corren bajo bloqueo de fila del producto
// (SELECT FOR UPDATE) con Commit/Rollback, de modo que dos salidas concurrentes sobre el
// mismo producto no puedan sobregirar el stock.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ProductID int64
	Type      string // IN u OUT
	Quantity  int64  // estrictamente positiva
}

// RegisterMovement valida la entrada, abre una transacción, bloquea la fila del producto,
// y para salidas (OUT) verifica que la cantidad no exceda el stock derivado antes de
// insertar. En caso de error no se persiste ninguna fila.
//
// Regla de rechazo: con stock actual S, una salida por S se acepta (stock queda en 0);
// una salida por S+1 falla con InsufficientStockError. Las entradas no tienen tope.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	// Validación defensiva: la capa DTO ya valida, pero el núcleo no confía en ella.
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del producto: serializa movimientos concurrentes por producto
		// y a la vez verifica su existencia.
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if input.Type == entity.MovementTypeOUT {
			sums, err := movementRepo.SumByType(ctx, input.ProductID)
			if err != nil {
				return err
			}
			current := domaininv.StockBalance(sums)
			if input.Quantity > current {
				return &domain.InsufficientStockError{Current: current, Requested: input.Quantity}
			}
		}

		mov := &entity.Movement{
			ProductID: input.ProductID,
			Type:      input.Type,
			Quantity:  input.Quantity,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.CreateMovementRequest) (*entity.Movement, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
	})
}

// GetByID obtiene un movimiento por ID.
func (uc *RegisterMovementUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	out := toMovementResponse(mov)
	return &out, nil
}

// List lista movimientos, más recientes primero.
func (uc *RegisterMovementUseCase) List(ctx context.Context, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}
