// Package events contains the domain events emitted after successful catalog and cart mutations.
package events

import (
	"encoding/json"
	"time"
)

const (
	SubjectPrefix         = "shop."
	ProductCreatedSubject = SubjectPrefix + "products.created"
	ProductUpdatedSubject = SubjectPrefix + "products.updated"
	ProductDeletedSubject = SubjectPrefix + "products.deleted"
	CartCreatedSubject    = SubjectPrefix + "carts.created"
	CartItemAddedSubject  = SubjectPrefix + "carts.item_added"
)

// Subjects lists every subject the stream must capture.
func Subjects() []string {
	return []string{SubjectPrefix + ">"}
}

type ProductChangedEvent struct {
	subject    string
	ProductID  string    `json:"product_id"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func ProductCreated(id, title string) ProductChangedEvent {
	return ProductChangedEvent{subject: ProductCreatedSubject, ProductID: id, Title: title, OccurredAt: time.Now().UTC()}
}

func ProductUpdated(id, title string) ProductChangedEvent {
	return ProductChangedEvent{subject: ProductUpdatedSubject, ProductID: id, Title: title, OccurredAt: time.Now().UTC()}
}

func ProductDeleted(id string) ProductChangedEvent {
	return ProductChangedEvent{subject: ProductDeletedSubject, ProductID: id, OccurredAt: time.Now().UTC()}
}

func (e ProductChangedEvent) Subject() string {
	return e.subject
}

func (e ProductChangedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

type CartCreatedEvent struct {
	CartID     string    `json:"cart_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func CartCreated(id string) CartCreatedEvent {
	return CartCreatedEvent{CartID: id, OccurredAt: time.Now().UTC()}
}

func (e CartCreatedEvent) Subject() string {
	return CartCreatedSubject
}

func (e CartCreatedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// CartItemAddedEvent carries the added amount and the resulting line item quantity.
type CartItemAddedEvent struct {
	CartID     string    `json:"cart_id"`
	ProductID  string    `json:"product_id"`
	Added      int       `json:"added"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

func CartItemAdded(cartID, productID string, added, quantity int) CartItemAddedEvent {
	return CartItemAddedEvent{
		CartID:     cartID,
		ProductID:  productID,
		Added:      added,
		Quantity:   quantity,
		OccurredAt: time.Now().UTC(),
	}
}

func (e CartItemAddedEvent) Subject() string {
	return CartItemAddedSubject
}

func (e CartItemAddedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
