package models_test

import (
	"errors"
	"math"
	"testing"

	"inventory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Valid(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		quantity int
	}{
		{"Laptop", 1200.50, 5},
		{"Mouse", 25.99, 10},
		{"Free sample", 0, 3},
		{"Out of stock", 9.99, 0},
		{"  padded  ", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := models.NewProduct(tc.name, tc.price, tc.quantity)
			require.NoError(t, err)
			assert.Equal(t, tc.name, p.Name())
			assert.Equal(t, tc.price, p.Price())
			assert.Equal(t, tc.quantity, p.Quantity())
			assert.Equal(t, tc.price*float64(tc.quantity), p.TotalValue())
		})
	}
}

func TestNewProduct_Invalid(t *testing.T) {
	cases := []struct {
		desc     string
		name     string
		price    float64
		quantity int
		field    string
	}{
		{"empty name", "", 1, 1, "name"},
		{"whitespace name", " \t\n", 1, 1, "name"},
		{"negative price", "A", -0.01, 1, "price"},
		{"negative quantity", "A", 1, -1, "quantity"},
		{"nan price", "A", math.NaN(), 1, "price"},
		{"infinite price", "A", math.Inf(1), 1, "price"},
		{"blank name and negative price", "", -1, 1, "name"},
		{"negative price and quantity", "A", -1, -1, "price"},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			p, err := models.NewProduct(tc.name, tc.price, tc.quantity)
			assert.Nil(t, p)
			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestProduct_SetPrice(t *testing.T) {
	p, err := models.NewProduct("Keyboard", 45.75, 8)
	require.NoError(t, err)

	assert.NoError(t, p.SetPrice(50))
	assert.Equal(t, 50.0, p.Price())

	err = p.SetPrice(-1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "price cannot be negative")
	assert.Equal(t, 50.0, p.Price())
}

func TestProduct_SetQuantity(t *testing.T) {
	p, err := models.NewProduct("Keyboard", 45.75, 8)
	require.NoError(t, err)

	assert.NoError(t, p.SetQuantity(0))
	assert.Equal(t, 0, p.Quantity())

	err = p.SetQuantity(-3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quantity cannot be negative")
	assert.Equal(t, 0, p.Quantity())
}

func TestProduct_Validate(t *testing.T) {
	var nilProduct *models.Product
	assert.Error(t, nilProduct.Validate())
	assert.Error(t, (&models.Product{}).Validate())

	p, err := models.NewProduct("Mouse", 25.99, 10)
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

func TestProduct_String(t *testing.T) {
	p, err := models.NewProduct("Laptop", 1200.5, 5)
	require.NoError(t, err)
	assert.Equal(t, "Product: Laptop, Price: $1200.50, Quantity: 5, Total Value: $6002.50", p.String())
}

func TestParsePrice(t *testing.T) {
	price, err := models.ParsePrice(" 12.5 ")
	assert.NoError(t, err)
	assert.Equal(t, 12.5, price)

	_, err = models.ParsePrice("twelve")
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "price", verr.Field)
}

func TestParseQuantity(t *testing.T) {
	quantity, err := models.ParseQuantity("7")
	assert.NoError(t, err)
	assert.Equal(t, 7, quantity)

	for _, input := range []string{"7.5", "", "seven"} {
		_, err = models.ParseQuantity(input)
		var verr *models.ValidationError
		require.True(t, errors.As(err, &verr), input)
		assert.Equal(t, "quantity", verr.Field)
	}
}
