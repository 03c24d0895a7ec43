package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
)

// ReviewService хранит отзывы и поддерживает агрегированный рейтинг товара
type ReviewService struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
	tx       repository.TxManager
}

func NewReviewService(products repository.ProductRepository, reviews repository.ReviewRepository, tx repository.TxManager) *ReviewService {
	return &ReviewService{products: products, reviews: reviews, tx: tx}
}

// ListByProduct возвращает отзывы товара. Для товара без отзывов — пустой список.
func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	if productID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.reviews.ListByProduct(ctx, productID)
}

// Add сохраняет отзыв и пересчитывает рейтинг и счётчик отзывов товара.
// Пересчёт идёт по полному набору отзывов, не инкрементально.
func (s *ReviewService) Add(ctx context.Context, r domain.Review) (*domain.Review, error) {
	if r.ProductID <= 0 || r.Name == "" || r.Comment == "" || r.Rating < 1 || r.Rating > 5 {
		return nil, ErrInvalidInput
	}

	cp := r
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.reviews.Create(ctx, &cp); err != nil {
			return err
		}

		p, err := s.products.GetByID(ctx, cp.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// review is kept even without a parent product; nothing to aggregate
				return nil
			}
			return err
		}

		all, err := s.reviews.ListByProduct(ctx, cp.ProductID)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, rv := range all {
			total = total.Add(decimal.NewFromInt(rv.Rating))
		}
		mean := total.Div(decimal.NewFromInt(int64(len(all))))

		p.Rating = mean.StringFixed(1)
		p.ReviewCount = int64(len(all))
		return s.products.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return &cp, nil
}
