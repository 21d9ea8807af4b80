package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-tracker/internal/domain/entity"
	"github.com/tu-usuario/stock-tracker/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. El fakeTxRunner implementa
// semántica de rollback con snapshot: si fn falla, el estado queda como estaba.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu             sync.Mutex
	products       map[int64]*entity.Product
	movements      []*entity.Movement
	nextProductID  int64
	nextMovementID int64
	now            time.Time
}

func newMemStore() *memStore {
	return &memStore{
		products:       make(map[int64]*entity.Product),
		nextProductID:  1,
		nextMovementID: 1,
		now:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick avanza el reloj lógico: cada movimiento recibe un created_at estrictamente mayor.
func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *memStore) addProduct(name string, cost, price int64) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Product{
		ID:        s.nextProductID,
		UUID:      uuid.New().String(),
		Name:      name,
		Cost:      decimal.NewFromInt(cost),
		Price:     decimal.NewFromInt(price),
		CreatedAt: s.tick(),
		UpdatedAt: s.now,
	}
	s.nextProductID++
	s.products[p.ID] = p
	return p
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextProductID
	r.s.nextProductID++
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		list = append(list, &cp)
	}
	// orden por created_at descendente, como el repositorio real
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			if list[j].CreatedAt.After(list[i].CreatedAt) {
				list[i], list[j] = list[j], list[i]
			}
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.nextMovementID
	r.s.nextMovementID++
	m.CreatedAt = r.s.tick()
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ context.Context, limit, offset int) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Movement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		cp := *r.s.movements[i]
		list = append(list, &cp)
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeMovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.Movement, error) {
	all, err := r.List(ctx, len(r.s.movements), 0)
	if err != nil {
		return nil, err
	}
	var list []*entity.Movement
	for _, m := range all {
		if m.ProductID == productID {
			list = append(list, m)
		}
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeMovementRepo) SumByType(_ context.Context, productID int64) (map[string]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sums := make(map[string]int64)
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			sums[m.Type] += m.Quantity
		}
	}
	return sums, nil
}

func (r *fakeMovementRepo) ExistsByProduct(_ context.Context, productID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxRunner ejecuta fn sobre el store y restaura el snapshot si fn falla.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	r.s.mu.Lock()
	productsSnap := make(map[int64]*entity.Product, len(r.s.products))
	for id, p := range r.s.products {
		cp := *p
		productsSnap[id] = &cp
	}
	movementsSnap := make([]*entity.Movement, len(r.s.movements))
	copy(movementsSnap, r.s.movements)
	nextMovSnap := r.s.nextMovementID
	nextProdSnap := r.s.nextProductID
	r.s.mu.Unlock()

	err := fn(&fakeProductRepo{s: r.s}, &fakeMovementRepo{s: r.s})
	if err != nil {
		r.s.mu.Lock()
		r.s.products = productsSnap
		r.s.movements = movementsSnap
		r.s.nextMovementID = nextMovSnap
		r.s.nextProductID = nextProdSnap
		r.s.mu.Unlock()
		return err
	}
	return nil
}
