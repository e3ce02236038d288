package storefront

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/areeba-ilyas/E-commerce-App/internal/cart"
	"github.com/areeba-ilyas/E-commerce-App/internal/catalog"
	"github.com/areeba-ilyas/E-commerce-App/pkg/kit"
)

const homeFeaturedCount = 8

// Server is the presentation-facing surface: thin handlers that forward
// plain data into the catalog and cart cores and render what they return.
type Server struct {
	Catalog  *catalog.Catalog
	Carts    *Carts
	Sessions *SessionMaker
	Checkout cart.Config
	PageSize int
	Log      *zap.Logger

	// Ready pings the cart store for readiness probes. Nil means always
	// ready (memory-backed runs).
	Ready func(context.Context) error
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if s.Ready == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Ready(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/products", s.listProducts)
	r.Get("/products/featured", s.featuredProducts)
	r.Get("/products/{id}", s.getProduct)
	r.Get("/categories", s.listCategories)
	r.Get("/categories/{category}/price-range", s.categoryPriceRange)

	r.Group(func(cr chi.Router) {
		cr.Use(s.withSession)
		cr.Get("/cart", s.getCart)
		cr.Post("/cart/items", s.addCartItem)
		cr.Put("/cart/items/{id}", s.updateCartItem)
		cr.Delete("/cart/items/{id}", s.removeCartItem)
		cr.Delete("/cart", s.clearCart)
		cr.Post("/checkout", s.checkout)
	})

	return r
}

// listProducts maps query parameters onto a catalog query. Parsing is
// permissive: malformed or missing values fall back to defaults, and the
// engine itself never rejects a spec.
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec := catalog.QuerySpec{
		SearchTerm: q.Get("q"),
		Category:   q.Get("category"),
		MinPrice:   parseFloat(q.Get("min_price"), 0),
		MaxPrice:   parseFloat(q.Get("max_price"), math.MaxFloat64),
		SortKey:    q.Get("sort"),
	}
	if spec.Category == "" {
		spec.Category = catalog.CategoryAll
	}

	page := catalog.PageSpec{
		Size:   parseInt(q.Get("page_size"), s.PageSize),
		Number: parseInt(q.Get("page"), 1),
	}

	kit.WriteJSON(w, http.StatusOK, s.Catalog.Query(spec, page))
}

func (s *Server) featuredProducts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.Featured(homeFeaturedCount))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": raw})
		return
	}

	p, ok := s.Catalog.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Catalog.CategoryCounts())
}

func (s *Server) categoryPriceRange(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	kit.WriteJSON(w, http.StatusOK, s.Catalog.PriceRangeForCategory(category))
}

func parseFloat(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func parseInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
