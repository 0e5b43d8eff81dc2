package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/services"
)

// productView is the API shape of a product. DiscountedPrice is present
// only for authenticated callers.
type productView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
}

func viewProduct(p *models.Product, authenticated bool) productView {
	view := productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
	if authenticated {
		discounted := services.DiscountedPrice(p.Price)
		view.DiscountedPrice = &discounted
	}
	return view
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		s.logger.Error(r.Context(), "listing products failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "listing products failed")
		return
	}

	authenticated := userFrom(r.Context()) != nil
	views := make([]productView, 0, len(list))
	for _, p := range list {
		views = append(views, viewProduct(p, authenticated))
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": views})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error(r.Context(), "loading product failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "loading product failed")
		return
	}

	writeJSON(w, http.StatusOK, viewProduct(p, userFrom(r.Context()) != nil))
}
