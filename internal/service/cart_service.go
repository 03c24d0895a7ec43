package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
)

// CartService реализует логику корзины: слияние позиций, изменение количества, удаление
type CartService struct {
	products repository.ProductRepository
	cart     repository.CartRepository
	tx       repository.TxManager
}

func NewCartService(products repository.ProductRepository, cart repository.CartRepository, tx repository.TxManager) *CartService {
	return &CartService{products: products, cart: cart, tx: tx}
}

// ErrProductGone сигнализирует, что позиция корзины ссылается на отсутствующий товар
var ErrProductGone = errors.New("referenced product missing")

// Items возвращает строки корзины пользователя, объединённые с товарами.
// Висячая ссылка на товар — нарушение целостности, а не not found.
func (s *CartService) Items(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	items, err := s.cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart item %d: %w", item.ID, ErrProductGone)
		}
		lines = append(lines, domain.CartLine{CartItem: item, Product: *p})
	}
	return lines, nil
}

// Add добавляет товар в корзину. Если строка (user, product, size) уже есть,
// количество суммируется с существующим вместо вставки дубликата.
func (s *CartService) Add(ctx context.Context, userID, productID, quantity int64, size domain.Size) (*domain.CartItem, error) {
	if userID <= 0 || productID <= 0 || !size.Valid() {
		return nil, ErrInvalidInput
	}

	var result *domain.CartItem
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("product %d: %w", productID, ErrProductGone)
			}
			return err
		}

		if quantity < 1 {
			quantity = 1
		}

		existing, err := s.cart.FindByUserProductSize(ctx, userID, productID, size)
		switch {
		case err == nil:
			// merge into the existing line
			result, err = s.cart.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
			return err
		case errors.Is(err, repository.ErrNotFound):
			item := domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity, Size: size}
			if err := s.cart.Create(ctx, &item); err != nil {
				return err
			}
			result = &item
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateQuantity заменяет количество в строке корзины
func (s *CartService) UpdateQuantity(ctx context.Context, id, quantity int64) (*domain.CartItem, error) {
	if id <= 0 || quantity < 1 {
		return nil, ErrInvalidInput
	}
	return s.cart.UpdateQuantity(ctx, id, quantity)
}

// Remove удаляет строку корзины по id
func (s *CartService) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.cart.Delete(ctx, id)
}
