package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_AddToCartCoalesces(t *testing.T) {
	s := &Session{}
	widget := Product{ID: "p1", Name: "Widget", Price: 9.99}
	gadget := Product{ID: "p2", Name: "Gadget", Price: 19.99}

	s.AddToCart(widget)
	s.AddToCart(gadget)
	s.AddToCart(widget)

	assert.Len(t, s.Cart, 2)
	assert.Equal(t, 2, s.Cart[0].Quantity)
	assert.Equal(t, "Widget", s.Cart[0].Name)
	assert.Equal(t, 1, s.Cart[1].Quantity)
}

func TestSession_RemoveFromCart(t *testing.T) {
	s := &Session{}
	s.AddToCart(Product{ID: "p1", Name: "Widget"})
	s.AddToCart(Product{ID: "p2", Name: "Gadget"})

	s.RemoveFromCart("p1")
	assert.Len(t, s.Cart, 1)
	assert.Equal(t, "p2", s.Cart[0].ProductID)

	s.RemoveFromCart("p2")
	assert.Nil(t, s.Cart)
}

func TestSession_LineItemsPreserveOrder(t *testing.T) {
	s := &Session{}
	s.AddToCart(Product{ID: "p2", Name: "Gadget"})
	s.AddToCart(Product{ID: "p1", Name: "Widget"})
	s.AddToCart(Product{ID: "p1", Name: "Widget"})

	items := s.LineItems()
	assert.Equal(t, []LineItem{
		{ProductName: "Gadget", Quantity: 1},
		{ProductName: "Widget", Quantity: 2},
	}, items)
}

func TestSession_IsEmpty(t *testing.T) {
	s := &Session{}
	assert.True(t, s.IsEmpty())

	s.GuestID = "g-123"
	assert.False(t, s.IsEmpty())
}
