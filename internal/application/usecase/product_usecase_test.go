package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-tracker/internal/application/dto"
	"github.com/tu-usuario/stock-tracker/internal/application/usecase"
	"github.com/tu-usuario/stock-tracker/internal/domain"
	"github.com/tu-usuario/stock-tracker/internal/domain/entity"
)

// Fakes mínimos para el CRUD de productos.

type stubProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *stubProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

// stubMovementRepo solo necesita ExistsByProduct para la política de borrado.
type stubMovementRepo struct {
	withMovements map[int64]bool
}

func (r *stubMovementRepo) Create(context.Context, *entity.Movement) error { return nil }
func (r *stubMovementRepo) GetByID(context.Context, int64) (*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) List(context.Context, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) ListByProduct(context.Context, int64, int, int) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *stubMovementRepo) SumByType(context.Context, int64) (map[string]int64, error) {
	return map[string]int64{}, nil
}
func (r *stubMovementRepo) ExistsByProduct(_ context.Context, productID int64) (bool, error) {
	return r.withMovements[productID], nil
}

func buildProductUC() (*usecase.ProductUseCase, *stubProductRepo, *stubMovementRepo) {
	repo := newStubProductRepo()
	movRepo := &stubMovementRepo{withMovements: make(map[int64]bool)}
	return usecase.NewProductUseCase(repo, movRepo), repo, movRepo
}

func strPtr(s string) *string { return &s }

func TestProductCreate_AsignaUUIDYTimestamps(t *testing.T) {
	uc, _, _ := buildProductUC()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Producto A",
		Cost:  decimal.NewFromInt(5),
		Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.NotEmpty(t, out.UUID)
	assert.False(t, out.CreatedAt.IsZero())
	assert.True(t, decimal.NewFromInt(5).Equal(out.Cost))
	assert.Nil(t, out.Barcode)
}

func TestProductCreate_NombreVacio(t *testing.T) {
	uc, _, _ := buildProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CostoNegativo(t *testing.T) {
	uc, _, _ := buildProductUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "X", Cost: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_BarcodeDuplicado(t *testing.T) {
	uc, _, _ := buildProductUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "A", Barcode: strPtr("7701234567890")})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "B", Barcode: strPtr("7701234567890")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Parcial(t *testing.T) {
	uc, _, _ := buildProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Original", Cost: decimal.NewFromInt(5), Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(12)
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Original", out.Name, "los campos no enviados no cambian")
	assert.True(t, newPrice.Equal(out.Price))
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt) || out.UpdatedAt.Equal(created.UpdatedAt))
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc, _, _ := buildProductUC()

	out, err := uc.Update(context.Background(), 9999, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc, _, _ := buildProductUC()

	out, err := uc.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_BloqueadoConMovimientos(t *testing.T) {
	uc, _, movRepo := buildProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Con historial"})
	require.NoError(t, err)
	movRepo.withMovements[created.ID] = true

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "no se borra un producto con movimientos")

	still, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, still, "el producto debe seguir existiendo")
}

func TestProductDelete_SinMovimientos(t *testing.T) {
	uc, _, _ := buildProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Sin historial"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	gone, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc, _, _ := buildProductUC()

	err := uc.Delete(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
