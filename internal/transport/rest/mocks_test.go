package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/abgdnv/filecommerce/internal/service"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  service.ProductDto
	products []service.ProductDto
	error    error
	// received holds the last create or update payload
	received any
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	return m.products, m.error
}

func (m *mockProductService) FindByID(_ context.Context, _ string) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductService) Create(_ context.Context, product service.ProductCreateDto) (*service.ProductDto, error) {
	m.received = product
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductService) Update(_ context.Context, _ string, product service.ProductUpdateDto) (*service.ProductDto, error) {
	m.received = product
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

func (m *mockProductService) DeleteByID(_ context.Context, _ string) error {
	return m.error
}

// mockCartService is a mock implementation of the CartService interface
type mockCartService struct {
	cart     service.CartDto
	items    []service.LineItemDto
	error    error
	received service.AddProductDto
}

func (m *mockCartService) Create(_ context.Context) (*service.CartDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.cart, nil
}

func (m *mockCartService) FindItems(_ context.Context, _ string) ([]service.LineItemDto, error) {
	return m.items, m.error
}

func (m *mockCartService) AddProduct(_ context.Context, _, _ string, item service.AddProductDto) (*service.CartDto, error) {
	m.received = item
	if m.error != nil {
		return nil, m.error
	}
	return &m.cart, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
