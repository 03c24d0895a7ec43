package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
)

// MemoryStore объединённое in-memory хранилище и простые генераторы ID.
// Счётчики начинаются с 1 и никогда не переиспользуются, даже после удаления.
type MemoryStore struct {
	mu             sync.RWMutex
	nextUserID     int64
	nextProdID     int64
	nextCartItemID int64
	nextReviewID   int64
	usersByID      map[int64]domain.User
	productsByID   map[int64]domain.Product
	cartItemsByID  map[int64]domain.CartItem
	reviewsByID    map[int64]domain.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextUserID:     1,
		nextProdID:     1,
		nextCartItemID: 1,
		nextReviewID:   1,
		usersByID:      make(map[int64]domain.User),
		productsByID:   make(map[int64]domain.Product),
		cartItemsByID:  make(map[int64]domain.CartItem),
		reviewsByID:    make(map[int64]domain.Review),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var (
	_ ProductRepository = (*MemoryStore)(nil)
	_ UserRepository    = (*MemoryUsers)(nil)
	_ CartRepository    = (*MemoryCart)(nil)
	_ ReviewRepository  = (*MemoryReviews)(nil)
)

// ProductRepository implementation
func (m *MemoryStore) Create(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.nextProdID
	m.nextProdID++
	m.productsByID[p.ID] = *p
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.productsByID[p.ID]; !ok {
		return ErrNotFound
	}
	m.productsByID[p.ID] = *p
	return nil
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Product, 0)
	for _, p := range m.productsByID {
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	// map iteration order is random; keep listings stable for clients
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UserRepository implementation on wrapper type
type MemoryUsers struct{ store *MemoryStore }

func NewMemoryUsers(store *MemoryStore) *MemoryUsers { return &MemoryUsers{store: store} }

func (mu *MemoryUsers) Create(ctx context.Context, u *domain.User) error {
	mu.store.wlock(ctx)
	defer mu.store.wunlock(ctx)
	u.ID = mu.store.nextUserID
	mu.store.nextUserID++
	mu.store.usersByID[u.ID] = *u
	return nil
}

func (mu *MemoryUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	mu.store.rlock(ctx)
	defer mu.store.runlock(ctx)
	u, ok := mu.store.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (mu *MemoryUsers) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	mu.store.rlock(ctx)
	defer mu.store.runlock(ctx)
	for _, u := range mu.store.usersByID {
		if u.Phone == phone {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CartRepository implementation on wrapper type
type MemoryCart struct{ store *MemoryStore }

func NewMemoryCart(store *MemoryStore) *MemoryCart { return &MemoryCart{store: store} }

func (mc *MemoryCart) Create(ctx context.Context, item *domain.CartItem) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	item.ID = mc.store.nextCartItemID
	mc.store.nextCartItemID++
	mc.store.cartItemsByID[item.ID] = *item
	return nil
}

func (mc *MemoryCart) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	item, ok := mc.store.cartItemsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := item
	return &cp, nil
}

func (mc *MemoryCart) ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	out := make([]domain.CartItem, 0)
	for _, item := range mc.store.cartItemsByID {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (mc *MemoryCart) FindByUserProductSize(ctx context.Context, userID, productID int64, size domain.Size) (*domain.CartItem, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	for _, item := range mc.store.cartItemsByID {
		if item.UserID == userID && item.ProductID == productID && item.Size == size {
			cp := item
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (mc *MemoryCart) UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.CartItem, error) {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	item, ok := mc.store.cartItemsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	mc.store.cartItemsByID[id] = item
	cp := item
	return &cp, nil
}

func (mc *MemoryCart) Delete(ctx context.Context, id int64) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	if _, ok := mc.store.cartItemsByID[id]; !ok {
		return ErrNotFound
	}
	delete(mc.store.cartItemsByID, id)
	return nil
}

// ReviewRepository implementation on wrapper type
type MemoryReviews struct{ store *MemoryStore }

func NewMemoryReviews(store *MemoryStore) *MemoryReviews { return &MemoryReviews{store: store} }

func (mr *MemoryReviews) Create(ctx context.Context, r *domain.Review) error {
	mr.store.wlock(ctx)
	defer mr.store.wunlock(ctx)
	r.ID = mr.store.nextReviewID
	mr.store.nextReviewID++
	mr.store.reviewsByID[r.ID] = *r
	return nil
}

func (mr *MemoryReviews) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	mr.store.rlock(ctx)
	defer mr.store.runlock(ctx)
	out := make([]domain.Review, 0)
	for _, r := range mr.store.reviewsByID {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
