package product

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"cornerstore/internal/entities/category"
)

// memProductRepo is an in-memory ProductRepository seeded with the corner
// store fixture: six products across three categories.
type memProductRepo struct {
	nextID     int
	products   map[int]*Product
	categories map[int]*category.Category
	sold       map[int]int // product id -> total quantity sold
}

func (m *memProductRepo) Create(ctx context.Context, p *Product) error {
	cat, ok := m.categories[p.CategoryId]
	if !ok {
		return category.ErrCategoryNotFound
	}
	p.Id = m.nextID
	m.nextID++
	p.Category = cat
	stored := *p
	m.products[p.Id] = &stored
	return nil
}

func (m *memProductRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (m *memProductRepo) Update(ctx context.Context, p *Product) error {
	cat, ok := m.categories[p.CategoryId]
	if !ok {
		return category.ErrCategoryNotFound
	}
	if _, ok := m.products[p.Id]; !ok {
		return ErrProductNotFound
	}
	p.Category = cat
	stored := *p
	m.products[p.Id] = &stored
	return nil
}

func (m *memProductRepo) List(ctx context.Context) ([]*Product, error) {
	var out []*Product
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (m *memProductRepo) Search(ctx context.Context, query string) ([]*Product, error) {
	q := strings.ToLower(query)
	all, _ := m.List(ctx)
	var out []*Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.ProductName), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category.CategoryName), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Popular(ctx context.Context, limit int) ([]*Product, error) {
	all, _ := m.List(ctx)
	var ranked []*Product
	for _, p := range all {
		if m.sold[p.Id] > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if m.sold[ranked[i].Id] != m.sold[ranked[j].Id] {
			return m.sold[ranked[i].Id] > m.sold[ranked[j].Id]
		}
		return ranked[i].Id < ranked[j].Id
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func seedProductRepo() *memProductRepo {
	food := &category.Category{Id: 1, CategoryName: "Food"}
	cleaning := &category.Category{Id: 2, CategoryName: "Cleaning"}
	home := &category.Category{Id: 3, CategoryName: "Home Improvement"}

	repo := &memProductRepo{
		nextID:     1,
		products:   map[int]*Product{},
		categories: map[int]*category.Category{1: food, 2: cleaning, 3: home},
		sold:       map[int]int{},
	}

	seed := []struct {
		name, price, brand string
		cat                *category.Category
	}{
		{"Tuna", "1.25", "Bumble Bee", food},
		{"Canned Tomatoes", "0.99", "Dole", food},
		{"Toilet Paper", "5.00", "Scott", cleaning},
		{"Dishwashing Soap", "3.75", "Dawn", cleaning},
		{"picture hanging kit", "8.75", "Acme", home},
		{"Milk 2%", "1.99", "Dairy", food},
	}
	for i, s := range seed {
		id := i + 1
		repo.products[id] = &Product{
			Id:          id,
			ProductName: s.name,
			Price:       decimal.RequireFromString(s.price),
			Brand:       s.brand,
			CategoryId:  s.cat.Id,
			Category:    s.cat,
		}
	}
	repo.nextID = 7

	// quantities across the four seeded orders
	repo.sold = map[int]int{1: 6, 2: 3, 3: 2, 4: 1, 5: 1, 6: 2}

	return repo
}

func newTestMux() *http.ServeMux {
	h := NewProductHandler(NewProductService(seedProductRepo()))
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestListProducts(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodGet, "/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var products []*Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("got %d products, want 6", len(products))
	}
	if products[0].Category == nil || products[0].Category.CategoryName == "" {
		t.Errorf("category not populated: %+v", products[0])
	}
}

func TestSearchProducts(t *testing.T) {
	mux := newTestMux()

	tests := []struct {
		search string
		want   int
	}{
		{"clean", 2},
		{"t", 4},
		{"v", 1},
		{"CLEAN", 2},
	}
	for _, tt := range tests {
		rec := doRequest(t, mux, http.MethodGet, "/products?search="+tt.search, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("search %q: status = %d", tt.search, rec.Code)
		}
		var products []*Product
		if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
			t.Fatalf("search %q: decode: %v", tt.search, err)
		}
		if len(products) != tt.want {
			t.Errorf("search %q: got %d products, want %d", tt.search, len(products), tt.want)
		}
	}
}

func TestCreateProduct(t *testing.T) {
	mux := newTestMux()

	input := Product{
		ProductName: "Test",
		CategoryId:  2,
		Price:       decimal.RequireFromString("4.11"),
		Brand:       "Test",
	}
	rec := doRequest(t, mux, http.MethodPost, "/products", input)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/products/7" {
		t.Errorf("Location = %q, want /products/7", got)
	}
	if !strings.Contains(rec.Body.String(), `"price":4.11`) {
		t.Errorf("price not serialized as a number: %s", rec.Body.String())
	}

	var created Product
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Id != 7 {
		t.Errorf("id = %d, want 7", created.Id)
	}

	rec = doRequest(t, mux, http.MethodGet, "/products", nil)
	var products []*Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 7 {
		t.Fatalf("got %d products after create, want 7", len(products))
	}
}

func TestCreateProductValidation(t *testing.T) {
	mux := newTestMux()

	// missing required fields
	rec := doRequest(t, mux, http.MethodPost, "/products", Product{Brand: "X", CategoryId: 1})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// dangling category reference
	rec = doRequest(t, mux, http.MethodPost, "/products", Product{
		ProductName: "X", Brand: "X", CategoryId: 99,
		Price: decimal.RequireFromString("1.00"),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("dangling category: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// negative price
	rec = doRequest(t, mux, http.MethodPost, "/products", Product{
		ProductName: "X", Brand: "X", CategoryId: 1,
		Price: decimal.RequireFromString("-1.00"),
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative price: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetProduct(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodGet, "/products/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var p Product
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ProductName != "Tuna" {
		t.Errorf("name = %q, want Tuna", p.ProductName)
	}
	if p.Category == nil || p.Category.CategoryName != "Food" {
		t.Errorf("category = %+v, want Food", p.Category)
	}

	rec = doRequest(t, mux, http.MethodGet, "/products/99", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing product: status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateProduct(t *testing.T) {
	mux := newTestMux()

	input := Product{
		Id:          1,
		ProductName: "Testing",
		CategoryId:  2,
		Brand:       "Test",
		Price:       decimal.RequireFromString("4.22"),
	}
	rec := doRequest(t, mux, http.MethodPut, "/products/1", input)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	rec = doRequest(t, mux, http.MethodGet, "/products", nil)
	var products []*Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("got %d products after update, want 6", len(products))
	}

	var updated *Product
	for _, p := range products {
		if p.Id == 1 {
			updated = p
		}
	}
	if updated == nil || updated.ProductName != "Testing" {
		t.Errorf("updated product = %+v, want name Testing", updated)
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	mux := newTestMux()

	input := Product{
		ProductName: "Nope", CategoryId: 1, Brand: "Nope",
		Price: decimal.RequireFromString("1.00"),
	}
	rec := doRequest(t, mux, http.MethodPut, "/products/99", input)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPopularProducts(t *testing.T) {
	mux := newTestMux()

	rec := doRequest(t, mux, http.MethodGet, "/products/popular", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var products []*Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("got %d products, want 5", len(products))
	}

	wantNames := []string{"Tuna", "Canned Tomatoes", "Toilet Paper", "Milk 2%", "Dishwashing Soap"}
	for i, want := range wantNames {
		if products[i].ProductName != want {
			t.Errorf("rank %d = %q, want %q", i, products[i].ProductName, want)
		}
	}
}
