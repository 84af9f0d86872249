package service

import (
	"github.com/abgdnv/filecommerce/internal/store"
)

// ProductCreateDto represents the data transfer object for creating a new product.
// Every field but Thumbnails must be non-zero. Available only has to be present.
type ProductCreateDto struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Code        string   `json:"code"        validate:"required"`
	Price       float64  `json:"price"       validate:"required"`
	Available   *bool    `json:"available"   validate:"required"`
	Stock       int      `json:"stock"       validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Thumbnails  []string `json:"thumbnails"`
}

// ProductUpdateDto carries a partial update. Zero values leave the stored field as it is,
// except Available and Thumbnails which replace it whenever they are present.
type ProductUpdateDto struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Available   *bool    `json:"available"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
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

// AddProductDto is the body of an add-to-cart request.
type AddProductDto struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type LineItemDto struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type CartDto struct {
	ID       string        `json:"id"`
	Products []LineItemDto `json:"products"`
}

// toProductDto converts a store.Product to a ProductDto.
func toProductDto(p *store.Product) *ProductDto {
	thumbnails := p.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}
	return &ProductDto{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Code:        p.Code,
		Price:       p.Price,
		Available:   p.Available,
		Stock:       p.Stock,
		Category:    p.Category,
		Thumbnails:  thumbnails,
		Status:      p.Status,
	}
}

func toLineItemDtos(items []store.LineItem) []LineItemDto {
	dtos := make([]LineItemDto, len(items))
	for i, item := range items {
		dtos[i] = LineItemDto{Product: item.Product, Quantity: item.Quantity}
	}
	return dtos
}

func toCartDto(c *store.Cart) *CartDto {
	return &CartDto{ID: c.ID, Products: toLineItemDtos(c.Products)}
}
