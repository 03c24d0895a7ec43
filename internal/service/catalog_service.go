package service

import (
	"context"
	"errors"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
)

// CatalogService инкапсулирует чтение каталога и создание товаров
type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

var ErrInvalidInput = errors.New("invalid input")

// List возвращает весь каталог. Неизвестное значение категории не считается
// ошибкой: в этом случае отдаётся полный список, как у существующих клиентов.
func (s *CatalogService) List(ctx context.Context, category string) ([]domain.Product, error) {
	var f repository.ProductFilter
	if c := domain.Category(category); c.Valid() {
		f.Category = &c
	}
	return s.products.List(ctx, f)
}

// Featured возвращает товары с отметкой featured
func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, repository.ProductFilter{FeaturedOnly: true})
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.products.GetByID(ctx, id)
}

// Create добавляет товар в каталог. Новый товар начинает без отзывов.
func (s *CatalogService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Name == "" || !p.Category.Valid() {
		return nil, ErrInvalidInput
	}
	cp := p
	if cp.Rating == "" {
		cp.Rating = "0"
	}
	if err := s.products.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}
