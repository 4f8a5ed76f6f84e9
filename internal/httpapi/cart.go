package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/rsrvd-site/internal/cart"
	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/observability"
)

type cartView struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

func viewOf(c *cart.Cart) cartView {
	items := c.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartView{Items: items, Count: c.Count(), Total: c.TotalPrice()}
}

type addItemRequest struct {
	ID string `json:"id"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(sessionFrom(r).Cart))
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ID) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "id is required"})
		return
	}
	svc, err := s.deps.Catalog.Service(r.Context(), req.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c := sessionFrom(r).Cart
	c.Add(svc)
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quantity == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "quantity is required"})
		return
	}
	c := sessionFrom(r).Cart
	c.UpdateQuantity(chi.URLParam(r, "id"), *req.Quantity)
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	c := sessionFrom(r).Cart
	c.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	c := sessionFrom(r).Cart
	c.Clear()
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	order, st, err := s.deps.Checkout.CheckoutWithStats(r.Context(), sess.ID, sess.Cart, sess.Inbox)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	observability.AppendServerTiming(w, "wait", st.WaitMs, "")
	observability.AppendServerTiming(w, "publish", st.PublishMs, "")
	observability.SetIfPos(w, "X-Checkout-Time", st.TotalMs)
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) drainNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Inbox.Drain())
}
