package seed

import (
	"context"
	"testing"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/service"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	usersRepo := repository.NewMemoryUsers(store)
	reviewsRepo := repository.NewMemoryReviews(store)
	tx := repository.NewMemoryTx(store)

	catalog := service.NewCatalogService(store)
	reviews := service.NewReviewService(store, reviewsRepo, tx)
	auth := service.NewAuthService(usersRepo)

	if err := Load(ctx, catalog, reviews, auth); err != nil {
		t.Fatalf("load: %v", err)
	}

	all, err := catalog.List(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 10 {
		t.Fatalf("expected 10 seeded products, got %v", len(all))
	}

	featured, _ := catalog.Featured(ctx)
	if len(featured) != 4 {
		t.Fatalf("expected 4 featured products, got %v", len(featured))
	}

	// the seed reviews pass through aggregation, so the first two products
	// end with recomputed rating and count
	p1, _ := catalog.GetByID(ctx, 1)
	if p1.Rating != "5.0" || p1.ReviewCount != 1 {
		t.Fatalf("product 1 aggregate: rating %q count %v", p1.Rating, p1.ReviewCount)
	}
	p2, _ := catalog.GetByID(ctx, 2)
	if p2.Rating != "4.0" || p2.ReviewCount != 1 {
		t.Fatalf("product 2 aggregate: rating %q count %v", p2.Rating, p2.ReviewCount)
	}

	if _, err := auth.Login(ctx, "9876543210", service.DefaultOTP); err != nil {
		t.Fatalf("seeded user login: %v", err)
	}
}
