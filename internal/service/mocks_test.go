package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/abgdnv/filecommerce/internal/store"
	"github.com/abgdnv/filecommerce/pkg/messaging"
	"github.com/stretchr/testify/mock"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  store.Product
	error    error
	// applied captures the product after the update func ran
	applied *store.Product
}

func (m *mockProductStore) FindAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) FindByID(_ context.Context, _ string) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductStore) Create(_ context.Context, product store.Product) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &product, nil
}

func (m *mockProductStore) Update(_ context.Context, _ string, apply func(*store.Product)) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	p := m.product
	apply(&p)
	m.applied = &p
	return &p, nil
}

func (m *mockProductStore) DeleteByID(_ context.Context, _ string) error {
	return m.error
}

// mockCartStore is a mock implementation of the CartStore interface
type mockCartStore struct {
	cart      store.Cart
	error     error
	addCalled bool
}

func (m *mockCartStore) Create(_ context.Context, cart store.Cart) (*store.Cart, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &cart, nil
}

func (m *mockCartStore) FindByID(_ context.Context, _ string) (*store.Cart, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.cart, nil
}

func (m *mockCartStore) AddItem(_ context.Context, _, productID string, quantity int) (*store.Cart, error) {
	m.addCalled = true
	if m.error != nil {
		return nil, m.error
	}
	c := m.cart
	c.Products = append([]store.LineItem(nil), m.cart.Products...)
	c.AddItem(productID, quantity)
	return &c, nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event messaging.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
