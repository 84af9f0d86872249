// Package service provides the implementation of catalog and cart business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"

	shoperrors "github.com/abgdnv/filecommerce/internal/errors"
	"github.com/abgdnv/filecommerce/internal/store"
	"github.com/abgdnv/filecommerce/pkg/messaging"
	"github.com/abgdnv/filecommerce/pkg/messaging/events"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProductService defines the methods for managing products.
type ProductService interface {
	// FindAll returns all products.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*ProductDto, error)

	// Create adds a new product with a generated ID and status set.
	// Returns ErrInvalidProduct if a mandatory field is missing.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update merges the given fields into an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}

// Products implements ProductService.
type Products struct {
	repository store.ProductStore
	publisher  messaging.Publisher
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewProductService creates a new instance of ProductService with the provided repository.
func NewProductService(repo store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Products {
	return &Products{
		repository: repo,
		publisher:  publisher,
		validate:   validator.New(),
		logger:     logger.With("component", "product_service"),
	}
}

func (s *Products) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i := range products {
		productDTOs[i] = *toProductDto(&products[i])
	}
	return productDTOs, nil
}

func (s *Products) FindByID(ctx context.Context, id string) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toProductDto(product), nil
}

func (s *Products) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	if err := s.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("%w: %w", shoperrors.ErrInvalidProduct, err)
	}
	thumbnails := product.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}

	created, err := s.repository.Create(ctx, store.Product{
		ID:          uuid.NewString(),
		Title:       product.Title,
		Description: product.Description,
		Code:        product.Code,
		Price:       product.Price,
		Available:   *product.Available,
		Stock:       product.Stock,
		Category:    product.Category,
		Thumbnails:  thumbnails,
		Status:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	publish(ctx, s.publisher, s.logger, events.ProductCreated(created.ID, created.Title))
	return toProductDto(created), nil
}

func (s *Products) Update(ctx context.Context, id string, product ProductUpdateDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, func(p *store.Product) {
		mergeProduct(p, product)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}

	publish(ctx, s.publisher, s.logger, events.ProductUpdated(updated.ID, updated.Title))
	return toProductDto(updated), nil
}

func (s *Products) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}

	publish(ctx, s.publisher, s.logger, events.ProductDeleted(id))
	return nil
}

// mergeProduct copies every non-zero field of u into p.
// A zero price or stock can therefore not be set through an update.
func mergeProduct(p *store.Product, u ProductUpdateDto) {
	if u.Title != "" {
		p.Title = u.Title
	}
	if u.Description != "" {
		p.Description = u.Description
	}
	if u.Code != "" {
		p.Code = u.Code
	}
	if u.Price != 0 {
		p.Price = u.Price
	}
	if u.Available != nil {
		p.Available = *u.Available
	}
	if u.Stock != 0 {
		p.Stock = u.Stock
	}
	if u.Category != "" {
		p.Category = u.Category
	}
	if u.Thumbnails != nil {
		p.Thumbnails = u.Thumbnails
	}
}

// publish sends the event and only logs a failure; the mutation has already been persisted.
func publish(ctx context.Context, publisher messaging.Publisher, logger *slog.Logger, event messaging.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}
