package models

import "fmt"

// Product represents a named, priced and counted line item in the inventory.
// The name is fixed at construction; price and quantity change only through
// SetPrice and SetQuantity, which keep both non-negative.
type Product struct {
	name     string
	price    float64
	quantity int
}

// NewProduct validates all three fields and returns a new Product.
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	return &Product{name: name, price: price, quantity: quantity}, nil
}

func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }
func (p *Product) Quantity() int  { return p.quantity }

// SetPrice replaces the price. A rejected price leaves the product unchanged.
func (p *Product) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

// SetQuantity replaces the quantity. A rejected quantity leaves the product unchanged.
func (p *Product) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	p.quantity = quantity
	return nil
}

// TotalValue returns price * quantity.
func (p *Product) TotalValue() float64 {
	return p.price * float64(p.quantity)
}

// Validate re-checks every field. A zero Product fails on its empty name.
func (p *Product) Validate() error {
	if p == nil {
		return newValidationError("product", "product is required")
	}
	if err := validateName(p.name); err != nil {
		return err
	}
	if err := validatePrice(p.price); err != nil {
		return err
	}
	return validateQuantity(p.quantity)
}

func (p *Product) String() string {
	return fmt.Sprintf("Product: %s, Price: $%.2f, Quantity: %d, Total Value: $%.2f",
		p.name, p.price, p.quantity, p.TotalValue())
}
