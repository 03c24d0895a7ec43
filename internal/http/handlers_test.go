package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/service"
)

func setupServer(t *testing.T) (*Server, *service.CatalogService) {
	t.Helper()
	store := repository.NewMemoryStore()
	usersRepo := repository.NewMemoryUsers(store)
	cartRepo := repository.NewMemoryCart(store)
	reviewsRepo := repository.NewMemoryReviews(store)
	tx := repository.NewMemoryTx(store)

	catalogSvc := service.NewCatalogService(store)
	cartSvc := service.NewCartService(store, cartRepo, tx)
	reviewsSvc := service.NewReviewService(store, reviewsRepo, tx)
	authSvc := service.NewAuthService(usersRepo)
	return NewServer(catalogSvc, cartSvc, reviewsSvc, authSvc), catalogSvc
}

func addProduct(t *testing.T, catalog *service.CatalogService, name string, cat domain.Category, featured bool) *domain.Product {
	t.Helper()
	p, err := catalog.Create(context.Background(), domain.Product{Name: name, Category: cat, Featured: featured})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	return v
}

func TestProducts_ListAndFilter(t *testing.T) {
	s, catalog := setupServer(t)
	addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, true)
	addProduct(t, catalog, "Aloo Bhujia", domain.CategoryNamkeens, false)

	w := doJSON(t, s, http.MethodGet, "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list code %v", w.Code)
	}
	if list := decode[[]domain.Product](t, w); len(list) != 2 {
		t.Fatalf("expected 2 products, got %v", len(list))
	}

	w = doJSON(t, s, http.MethodGet, "/api/products?category=namkeens", nil)
	if list := decode[[]domain.Product](t, w); len(list) != 1 || list[0].Name != "Aloo Bhujia" {
		t.Fatalf("category filter: %+v", decode[[]domain.Product](t, w))
	}

	// unrecognized category falls back to the full listing
	w = doJSON(t, s, http.MethodGet, "/api/products?category=chocolates", nil)
	if list := decode[[]domain.Product](t, w); len(list) != 2 {
		t.Fatalf("fallback listing expected 2 products, got %v", len(list))
	}

	w = doJSON(t, s, http.MethodGet, "/api/products/featured", nil)
	if list := decode[[]domain.Product](t, w); len(list) != 1 || list[0].Name != "Gulab Jamun" {
		t.Fatalf("featured listing: %+v", list)
	}
}

func TestProducts_GetByID(t *testing.T) {
	s, catalog := setupServer(t)
	p := addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, false)

	w := doJSON(t, s, http.MethodGet, "/api/products/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get code %v", w.Code)
	}
	if got := decode[domain.Product](t, w); got.ID != p.ID {
		t.Fatalf("wrong product: %+v", got)
	}

	w = doJSON(t, s, http.MethodGet, "/api/products/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/products/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id expected 404, got %v", w.Code)
	}
}

func TestCart_AddMergeFlow(t *testing.T) {
	s, catalog := setupServer(t)
	addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, false)

	body := map[string]any{"productId": 1, "quantity": 1, "size": "250g"}
	w := doJSON(t, s, http.MethodPost, "/api/cart", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first add code %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodPost, "/api/cart", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("second add code %v", w.Code)
	}
	if item := decode[domain.CartItem](t, w); item.Quantity != 2 {
		t.Fatalf("merged quantity expected 2, got %v", item.Quantity)
	}

	w = doJSON(t, s, http.MethodGet, "/api/cart", nil)
	lines := decode[[]domain.CartLine](t, w)
	if len(lines) != 1 {
		t.Fatalf("expected one cart row, got %v", len(lines))
	}
	if lines[0].Product.Name != "Gulab Jamun" {
		t.Fatalf("cart line not joined with product: %+v", lines[0])
	}
}

func TestCart_BadRequests(t *testing.T) {
	s, catalog := setupServer(t)
	addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, false)

	// missing size
	w := doJSON(t, s, http.MethodPost, "/api/cart", map[string]any{"productId": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing size expected 400, got %v", w.Code)
	}

	// unknown size tier
	w = doJSON(t, s, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "size": "750g"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad size expected 400, got %v", w.Code)
	}

	// product missing surfaces as 500, same contract as before
	w = doJSON(t, s, http.MethodPost, "/api/cart", map[string]any{"productId": 42, "size": "250g"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("missing product expected 500, got %v", w.Code)
	}
}

func TestCart_UpdateAndRemove(t *testing.T) {
	s, catalog := setupServer(t)
	addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, false)
	_ = doJSON(t, s, http.MethodPost, "/api/cart", map[string]any{"productId": 1, "quantity": 1, "size": "250g"})

	w := doJSON(t, s, http.MethodPatch, "/api/cart/1", map[string]any{"quantity": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("patch code %v", w.Code)
	}
	if item := decode[domain.CartItem](t, w); item.Quantity != 5 {
		t.Fatalf("quantity expected 5, got %v", item.Quantity)
	}

	w = doJSON(t, s, http.MethodPatch, "/api/cart/1", map[string]any{"quantity": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPatch, "/api/cart/999", map[string]any{"quantity": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown item expected 404, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodDelete, "/api/cart/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete code %v", w.Code)
	}
	w = doJSON(t, s, http.MethodDelete, "/api/cart/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete expected 404, got %v", w.Code)
	}
}

func TestReviews_Flow(t *testing.T) {
	s, catalog := setupServer(t)
	addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, false)

	w := doJSON(t, s, http.MethodPost, "/api/products/1/reviews", map[string]any{
		"name": "Rajesh", "rating": 5, "comment": "excellent",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("first review code %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodPost, "/api/products/1/reviews", map[string]any{
		"name": "Vikram", "rating": 4, "comment": "good",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("second review code %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/products/1", nil)
	p := decode[domain.Product](t, w)
	if p.Rating != "4.5" || p.ReviewCount != 2 {
		t.Fatalf("aggregate: rating %q count %v", p.Rating, p.ReviewCount)
	}

	w = doJSON(t, s, http.MethodGet, "/api/products/1/reviews", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list reviews code %v", w.Code)
	}
	if list := decode[[]domain.Review](t, w); len(list) != 2 {
		t.Fatalf("expected 2 reviews, got %v", len(list))
	}
}

func TestReviews_BadRequests(t *testing.T) {
	s, catalog := setupServer(t)
	addProduct(t, catalog, "Gulab Jamun", domain.CategorySweets, false)

	w := doJSON(t, s, http.MethodPost, "/api/products/1/reviews", map[string]any{
		"name": "N", "rating": 6, "comment": "c",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("rating out of range expected 400, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/api/products/abc/reviews", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id expected 400, got %v", w.Code)
	}
}

func TestAuth_Endpoints(t *testing.T) {
	s, _ := setupServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/auth/register", map[string]any{
		"name": "Aryan", "phone": "9876543210",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register code %v: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodPost, "/api/auth/register", map[string]any{
		"name": "Imposter", "phone": "9876543210",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate phone expected 409, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/api/auth/login", map[string]any{
		"phone": "9876543210", "otp": service.DefaultOTP,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login code %v", w.Code)
	}
	if u := decode[domain.User](t, w); u.Name != "Aryan" {
		t.Fatalf("wrong user: %+v", u)
	}

	w = doJSON(t, s, http.MethodPost, "/api/auth/login", map[string]any{
		"phone": "9876543210", "otp": "9999",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong otp expected 401, got %v", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/api/auth/login", map[string]any{"phone": "9876543210"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing otp expected 400, got %v", w.Code)
	}
}
