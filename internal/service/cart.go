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

// CartService defines the methods for managing carts.
type CartService interface {
	// Create stores a new empty cart.
	Create(ctx context.Context) (*CartDto, error)

	// FindItems returns the line items of a cart.
	// Returns ErrCartNotFound if no cart exists with the given ID.
	FindItems(ctx context.Context, id string) ([]LineItemDto, error)

	// AddProduct adds the quantity of a product to a cart, merging with an existing line item.
	// Returns ErrInvalidQuantity, ErrProductNotFound or ErrCartNotFound, checked in that order.
	AddProduct(ctx context.Context, cartID, productID string, item AddProductDto) (*CartDto, error)
}

// Carts implements CartService.
type Carts struct {
	carts     store.CartStore
	products  store.ProductStore
	publisher messaging.Publisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewCartService creates a cart service. Products are only read, to check that an added product exists.
func NewCartService(carts store.CartStore, products store.ProductStore, publisher messaging.Publisher, logger *slog.Logger) *Carts {
	return &Carts{
		carts:     carts,
		products:  products,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger.With("component", "cart_service"),
	}
}

func (s *Carts) Create(ctx context.Context) (*CartDto, error) {
	cart, err := s.carts.Create(ctx, store.Cart{ID: uuid.NewString(), Products: []store.LineItem{}})
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	publish(ctx, s.publisher, s.logger, events.CartCreated(cart.ID))
	return toCartDto(cart), nil
}

func (s *Carts) FindItems(ctx context.Context, id string) ([]LineItemDto, error) {
	cart, err := s.carts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart by ID %s: %w", id, err)
	}
	return toLineItemDtos(cart.Products), nil
}

func (s *Carts) AddProduct(ctx context.Context, cartID, productID string, item AddProductDto) (*CartDto, error) {
	if err := s.validate.Struct(item); err != nil {
		return nil, fmt.Errorf("%w: %w", shoperrors.ErrInvalidQuantity, err)
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", productID, err)
	}

	cart, err := s.carts.AddItem(ctx, cartID, productID, item.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add product to cart: %w", err)
	}

	quantity := item.Quantity
	for _, li := range cart.Products {
		if li.Product == productID {
			quantity = li.Quantity
			break
		}
	}
	publish(ctx, s.publisher, s.logger, events.CartItemAdded(cart.ID, productID, item.Quantity, quantity))
	return toCartDto(cart), nil
}
