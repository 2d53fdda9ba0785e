package repositories

import (
	"strings"
	"sync"

	"inventory/internal/models"
)

// MemoryProductRepository is an in-memory, insertion-ordered implementation
// of ProductRepository.
type MemoryProductRepository struct {
	products []*models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates an empty MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make([]*models.Product, 0),
	}
}

// GetAll returns the stored products in insertion order. The returned slice
// is a copy; the products themselves are shared.
func (r *MemoryProductRepository) GetAll() []*models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]*models.Product, len(r.products))
	copy(productList, r.products)
	return productList
}

// GetByName returns the first product whose name matches ignoring case.
func (r *MemoryProductRepository) GetByName(name string) (*models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if strings.EqualFold(p.Name(), name) {
			return p, true
		}
	}
	return nil, false
}

// Create appends a product. Uniqueness is the caller's concern.
func (r *MemoryProductRepository) Create(product *models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, product)
}

// Count returns the number of stored products.
func (r *MemoryProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}
