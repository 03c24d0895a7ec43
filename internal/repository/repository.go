package repository

import (
	"context"
	"errors"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// ProductFilter параметры выборки каталога
type ProductFilter struct {
	Category     *domain.Category
	FeaturedOnly bool
}

// UserRepository интерфейс репозитория покупателей
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// CartRepository интерфейс репозитория позиций корзины
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.CartItem, error)
	FindByUserProductSize(ctx context.Context, userID, productID int64, size domain.Size) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.CartItem, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
