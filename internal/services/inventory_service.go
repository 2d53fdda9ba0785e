package services

import (
	"errors"
	"fmt"

	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned by the update helpers when no product matches the name.
var ErrProductNotFound = errors.New("product not found")

// AddResult tells the caller whether Add stored a new product or merged it
// into an existing one.
type AddResult int

const (
	Inserted AddResult = iota + 1
	Merged
)

func (r AddResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Merged:
		return "merged"
	default:
		return fmt.Sprintf("AddResult(%d)", int(r))
	}
}

// Inventory is an ordered collection of products, unique by name ignoring case.
type Inventory struct {
	repo repositories.ProductRepository
}

// NewInventory creates an empty Inventory backed by memory.
func NewInventory() *Inventory {
	return NewInventoryWithRepository(repositories.NewMemoryProductRepository())
}

// NewInventoryWithRepository creates an Inventory over the given repository.
func NewInventoryWithRepository(repo repositories.ProductRepository) *Inventory {
	return &Inventory{
		repo: repo,
	}
}

// Add stores product, or, when a product with the same name (ignoring case)
// already exists, adds its quantity to the existing entry and discards it.
// The existing price is kept as is on a merge; prices only change through
// SetPrice.
func (inv *Inventory) Add(product *models.Product) (AddResult, error) {
	if err := product.Validate(); err != nil {
		return 0, err
	}

	existing, ok := inv.repo.GetByName(product.Name())
	if !ok {
		inv.repo.Create(product)
		logrus.WithField("product", product.Name()).Debug("product inserted")
		return Inserted, nil
	}

	// Overflowing int wraps negative and is rejected, leaving existing intact.
	if err := existing.SetQuantity(existing.Quantity() + product.Quantity()); err != nil {
		return 0, fmt.Errorf("failed to merge %q: %w", product.Name(), err)
	}
	logrus.WithFields(logrus.Fields{
		"product":  existing.Name(),
		"quantity": existing.Quantity(),
	}).Debug("product merged")
	return Merged, nil
}

// Find returns the product whose name matches ignoring case.
func (inv *Inventory) Find(name string) (*models.Product, bool) {
	return inv.repo.GetByName(name)
}

// TotalValue sums TotalValue over all products.
func (inv *Inventory) TotalValue() float64 {
	var total float64
	for _, p := range inv.repo.GetAll() {
		total += p.TotalValue()
	}
	return total
}

// List returns the products in insertion order.
func (inv *Inventory) List() []*models.Product {
	return inv.repo.GetAll()
}

// UpdatePrice sets the price of the named product.
func (inv *Inventory) UpdatePrice(name string, price float64) (*models.Product, error) {
	p, ok := inv.repo.GetByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateQuantity sets the quantity of the named product.
func (inv *Inventory) UpdateQuantity(name string, quantity int) (*models.Product, error) {
	p, ok := inv.repo.GetByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, name)
	}
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return p, nil
}
