package inventory

import (
	"context"

	"github.com/tu-usuario/stock-tracker/internal/application/dto"
	"github.com/tu-usuario/stock-tracker/internal/domain"
	domaininv "github.com/tu-usuario/stock-tracker/internal/domain/inventory"
	"github.com/tu-usuario/stock-tracker/internal/domain/repository"
)

// StockUseCase consulta el stock derivado de los movimientos. No mantiene estado propio.
type StockUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetStock calcula el stock actual de un producto sumando sus movimientos por tipo.
// No verifica existencia del producto (responsabilidad del caller); un producto sin
// movimientos tiene stock 0.
func (uc *StockUseCase) GetStock(ctx context.Context, productID int64) (int64, error) {
	sums, err := uc.movementRepo.SumByType(ctx, productID)
	if err != nil {
		return 0, err
	}
	return domaininv.StockBalance(sums), nil
}

// GetProductStock devuelve el stock de un producto existente; ErrNotFound si no existe.
func (uc *StockUseCase) GetProductStock(ctx context.Context, productID int64) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.GetStock(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ProductID: productID, Stock: stock}, nil
}

// listStockPageSize tamaño de página interno al recorrer el listado de productos.
const listStockPageSize = 500

// ListStock devuelve el stock de TODOS los productos, en el orden del listado de
// productos, paginando internamente hasta agotarlo. Costo O(productos ×
// movimientos-por-producto): aceptable para la escala actual; si crece, conviene un
// agregado por lotes en el repositorio.
func (uc *StockUseCase) ListStock(ctx context.Context) ([]dto.ProductStockResponse, error) {
	result := make([]dto.ProductStockResponse, 0)
	for offset := 0; ; offset += listStockPageSize {
		products, err := uc.productRepo.List(ctx, listStockPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			stock, err := uc.GetStock(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			result = append(result, dto.ProductStockResponse{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     stock,
			})
		}
		// Página incompleta: no quedan más productos.
		if len(products) < listStockPageSize {
			return result, nil
		}
	}
}
