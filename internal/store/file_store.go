package store

import (
	"context"
	"fmt"
	"log/slog"

	shoperrors "github.com/abgdnv/filecommerce/internal/errors"
)

// FileProductStore implements ProductStore on top of a JSON collection file.
type FileProductStore struct {
	products *Collection[Product]
}

// NewFileProductStore creates a product store persisting to path.
func NewFileProductStore(path string, tolerateCorrupt bool, logger *slog.Logger) *FileProductStore {
	return &FileProductStore{products: NewCollection[Product](path, tolerateCorrupt, logger)}
}

func (s *FileProductStore) FindAll(ctx context.Context) ([]Product, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (s *FileProductStore) FindByID(ctx context.Context, id string) (*Product, error) {
	products, err := s.products.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, shoperrors.ErrProductNotFound
}

func (s *FileProductStore) Create(ctx context.Context, product Product) (*Product, error) {
	err := s.products.Mutate(ctx, func(products []Product) ([]Product, error) {
		return append(products, product), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

func (s *FileProductStore) Update(ctx context.Context, id string, apply func(*Product)) (*Product, error) {
	var updated Product
	err := s.products.Mutate(ctx, func(products []Product) ([]Product, error) {
		for i := range products {
			if products[i].ID == id {
				apply(&products[i])
				// the record keeps its identity whatever apply did
				products[i].ID = id
				updated = products[i]
				return products, nil
			}
		}
		return nil, shoperrors.ErrProductNotFound
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &updated, nil
}

func (s *FileProductStore) DeleteByID(ctx context.Context, id string) error {
	err := s.products.Mutate(ctx, func(products []Product) ([]Product, error) {
		remaining := make([]Product, 0, len(products))
		for _, p := range products {
			if p.ID != id {
				remaining = append(remaining, p)
			}
		}
		if len(remaining) == len(products) {
			return nil, shoperrors.ErrProductNotFound
		}
		return remaining, nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// FileCartStore implements CartStore on top of a JSON collection file.
type FileCartStore struct {
	carts *Collection[Cart]
}

// NewFileCartStore creates a cart store persisting to path.
func NewFileCartStore(path string, tolerateCorrupt bool, logger *slog.Logger) *FileCartStore {
	return &FileCartStore{carts: NewCollection[Cart](path, tolerateCorrupt, logger)}
}

func (s *FileCartStore) Create(ctx context.Context, cart Cart) (*Cart, error) {
	if cart.Products == nil {
		cart.Products = []LineItem{}
	}
	err := s.carts.Mutate(ctx, func(carts []Cart) ([]Cart, error) {
		return append(carts, cart), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return &cart, nil
}

func (s *FileCartStore) FindByID(ctx context.Context, id string) (*Cart, error) {
	carts, err := s.carts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load carts: %w", err)
	}
	for i := range carts {
		if carts[i].ID == id {
			if carts[i].Products == nil {
				carts[i].Products = []LineItem{}
			}
			return &carts[i], nil
		}
	}
	return nil, shoperrors.ErrCartNotFound
}

func (s *FileCartStore) AddItem(ctx context.Context, cartID, productID string, quantity int) (*Cart, error) {
	var updated Cart
	err := s.carts.Mutate(ctx, func(carts []Cart) ([]Cart, error) {
		for i := range carts {
			if carts[i].ID == cartID {
				carts[i].AddItem(productID, quantity)
				updated = carts[i]
				return carts, nil
			}
		}
		return nil, shoperrors.ErrCartNotFound
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add product %s to cart %s: %w", productID, cartID, err)
	}
	return &updated, nil
}
