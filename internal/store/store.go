// Package store provides the product and cart collections and their file-backed implementations.
package store

import (
	"context"
)

// Product is a catalog record as persisted in the products file.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Available   bool     `json:"available"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
	Status      bool     `json:"status"`
}

// LineItem references a product by id. The reference is not checked after the item is added.
type LineItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// Cart is a cart record as persisted in the carts file.
type Cart struct {
	ID       string     `json:"id"`
	Products []LineItem `json:"products"`
}

// AddItem increments the line item for productID, appending a new one if the cart has none.
// Returns the resulting line item.
func (c *Cart) AddItem(productID string, quantity int) LineItem {
	for i := range c.Products {
		if c.Products[i].Product == productID {
			c.Products[i].Quantity += quantity
			return c.Products[i]
		}
	}
	item := LineItem{Product: productID, Quantity: quantity}
	c.Products = append(c.Products, item)
	return item
}

// ProductStore is an interface for product storage operations.
type ProductStore interface {
	// FindAll returns every product in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Create appends the product to the collection.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update applies the changes to the stored product and persists it.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, apply func(*Product)) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

// CartStore is an interface for cart storage operations.
type CartStore interface {
	// Create appends the cart to the collection.
	Create(ctx context.Context, cart Cart) (*Cart, error)

	// FindByID retrieves a single cart by its unique identifier.
	// Returns ErrCartNotFound if no cart exists with the given ID.
	FindByID(ctx context.Context, id string) (*Cart, error)

	// AddItem adds quantity of productID to the cart and persists it.
	// Returns ErrCartNotFound if no cart exists with the given ID.
	AddItem(ctx context.Context, cartID, productID string, quantity int) (*Cart, error)
}
