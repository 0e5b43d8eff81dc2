package models

// CartLine is one product held in a visitor's cart.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Session is the per-visitor state round-tripped through an encrypted
// cookie on every request. It replaces the free-form session bag of the
// previous system with explicit fields and defined zero-value defaults:
// empty cart, no guest id, no completed order, no quiz answers.
type Session struct {
	Cart           []CartLine        `json:"cart,omitempty"`
	GuestID        string            `json:"guest_id,omitempty"`
	OrderCompleted bool              `json:"order_completed,omitempty"`
	QuizAnswers    map[string]string `json:"quiz_answers,omitempty"`
}

// AddToCart appends a product to the cart, coalescing by product id.
func (s *Session) AddToCart(p Product) {
	for i := range s.Cart {
		if s.Cart[i].ProductID == p.ID {
			s.Cart[i].Quantity++
			return
		}
	}
	s.Cart = append(s.Cart, CartLine{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
}

// RemoveFromCart drops the cart line for the given product id, if present.
func (s *Session) RemoveFromCart(productID string) {
	lines := s.Cart[:0]
	for _, l := range s.Cart {
		if l.ProductID != productID {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		s.Cart = nil
		return
	}
	s.Cart = lines
}

// LineItems converts the cart into order line items, preserving order.
func (s *Session) LineItems() []LineItem {
	items := make([]LineItem, 0, len(s.Cart))
	for _, l := range s.Cart {
		items = append(items, LineItem{ProductName: l.Name, Quantity: l.Quantity})
	}
	return items
}

// IsEmpty reports whether the entire session still has its defaults, in
// which case no cookie needs to be written.
func (s *Session) IsEmpty() bool {
	return len(s.Cart) == 0 && s.GuestID == "" && !s.OrderCompleted && len(s.QuizAnswers) == 0
}
