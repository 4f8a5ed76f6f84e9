package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/rsrvd-site/internal/observability"
)

func (s *Server) listServices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.Services())
}

func (s *Server) listPackages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.Packages())
}

func (s *Server) listPortfolio(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	featured := q.Get("featured") == "true" || q.Get("featured") == "1"
	writeJSON(w, http.StatusOK, s.deps.Catalog.Portfolio(q.Get("category"), featured))
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	products, err := s.deps.Catalog.Products(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	observability.AppendServerTiming(w, "catalog", observability.SinceMs(start), "")
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	p, err := s.deps.Catalog.Product(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	observability.AppendServerTiming(w, "catalog", observability.SinceMs(start), "")
	writeJSON(w, http.StatusOK, p)
}
