package repositories

import (
	"inventory/internal/models"
)

// ProductRepository defines the interface for ordered product storage.
// Names are compared case-insensitively.
type ProductRepository interface {
	GetAll() []*models.Product
	GetByName(name string) (*models.Product, bool)
	Create(product *models.Product)
	Count() int
}
