package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/services"
)

type cartView struct {
	Items          []models.CartLine `json:"items"`
	Total          float64           `json:"total"`
	OrderCompleted bool              `json:"order_completed,omitempty"`
}

func viewCart(session *models.Session, authenticated bool) cartView {
	view := cartView{Items: session.Cart, OrderCompleted: session.OrderCompleted}
	if view.Items == nil {
		view.Items = []models.CartLine{}
	}
	for _, line := range session.Cart {
		price := line.Price
		if authenticated {
			price = services.DiscountedPrice(price)
		}
		view.Total += price * float64(line.Quantity)
	}
	return view
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Load(r)

	view := viewCart(session, userFrom(r.Context()) != nil)

	// the success flag is shown once and then reset
	if session.OrderCompleted {
		session.OrderCompleted = false
		if err := s.sessions.Save(w, session); err != nil {
			s.logger.Error(r.Context(), "saving session failed", "error", err.Error())
		}
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := decodeJSON(r, &req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	product, err := s.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error(r.Context(), "loading product failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "loading product failed")
		return
	}

	session := s.sessions.Load(r)
	session.AddToCart(*product)
	if err := s.sessions.Save(w, session); err != nil {
		s.logger.Error(r.Context(), "saving session failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "saving cart failed")
		return
	}

	writeJSON(w, http.StatusOK, viewCart(session, userFrom(r.Context()) != nil))
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Load(r)
	session.RemoveFromCart(r.PathValue("id"))

	if err := s.sessions.Save(w, session); err != nil {
		s.logger.Error(r.Context(), "saving session failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "saving cart failed")
		return
	}

	writeJSON(w, http.StatusOK, viewCart(session, userFrom(r.Context()) != nil))
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Load(r)
	if len(session.Cart) == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	ownerUserID := ""
	guestSessionID := ""
	if user := userFrom(r.Context()); user != nil {
		ownerUserID = user.ID
	} else {
		if session.GuestID == "" {
			guestID, err := common.MakeRandHexString(16)
			if err != nil {
				s.logger.Error(r.Context(), "generating guest id failed", "error", err.Error())
				writeError(w, http.StatusInternalServerError, "checkout failed")
				return
			}
			session.GuestID = guestID
		}
		guestSessionID = session.GuestID
	}

	orderID, err := s.checkout.CreateOrder(r.Context(), ownerUserID, guestSessionID, session.LineItems())
	if err != nil {
		s.logger.Error(r.Context(), "creating order failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "checkout failed")
		return
	}

	session.Cart = nil
	session.OrderCompleted = true
	if err := s.sessions.Save(w, session); err != nil {
		s.logger.Error(r.Context(), "saving session failed", "error", err.Error())
	}

	writeJSON(w, http.StatusCreated, map[string]string{"order_id": orderID})
}

type orderView struct {
	ID             string `json:"id"`
	ProductSummary string `json:"product_summary"`
	CreatedAt      string `json:"created_at"`
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	var list []*models.Order
	var err error

	if user := userFrom(r.Context()); user != nil {
		list, err = s.checkout.ListUserOrders(r.Context(), user.ID)
	} else if session := s.sessions.Load(r); session.GuestID != "" {
		list, err = s.checkout.ListGuestOrders(r.Context(), session.GuestID)
	}
	if err != nil {
		s.logger.Error(r.Context(), "listing orders failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "listing orders failed")
		return
	}

	views := make([]orderView, 0, len(list))
	for _, o := range list {
		views = append(views, orderView{
			ID:             o.ID,
			ProductSummary: o.ProductSummary,
			CreatedAt:      o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"orders": views})
}
