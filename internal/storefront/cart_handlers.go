package storefront

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/areeba-ilyas/E-commerce-App/internal/cart"
	"github.com/areeba-ilyas/E-commerce-App/pkg/kit"
)

const maxCartBody = 1 << 16

// cartView is the full cart snapshot plus derived totals, returned by every
// cart operation: command in, new state out.
type cartView struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func (s *Server) view(ledger *cart.Ledger, items []cart.Line) cartView {
	return cartView{Items: items, Totals: ledger.Totals(s.Checkout)}
}

func (s *Server) ledger(w http.ResponseWriter, r *http.Request) (*cart.Ledger, bool) {
	id, ok := sessionFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusInternalServerError, "no session", nil)
		return nil, false
	}
	return s.Carts.For(r.Context(), id), true
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.ledger(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.view(ledger, ledger.Lines()))
}

type addItemReq struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.ledger(w, r)
	if !ok {
		return
	}

	var req addItemReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	p, found := s.Catalog.Get(req.ID)
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ID})
		return
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	kit.WriteJSON(w, http.StatusOK, s.view(ledger, ledger.Add(r.Context(), p, qty)))
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

// updateCartItem replaces a line's quantity. Quantities below one remove
// the line; an unknown id is a quiet no-op.
func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.ledger(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	var req updateItemReq
	if err := decodeBody(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.view(ledger, ledger.SetQuantity(r.Context(), id, req.Quantity)))
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.ledger(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad product id", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, s.view(ledger, ledger.Remove(r.Context(), id)))
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.ledger(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.view(ledger, ledger.Clear(r.Context())))
}

type checkoutResponse struct {
	OrderID  string      `json:"orderId"`
	PlacedAt time.Time   `json:"placedAt"`
	Items    []cart.Line `json:"items"`
	Totals   cart.Totals `json:"totals"`
}

// checkout confirms the order and empties the ledger. There is no payment
// step: the confirmation is the whole flow.
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.ledger(w, r)
	if !ok {
		return
	}

	items := ledger.Lines()
	if len(items) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
		return
	}

	resp := checkoutResponse{
		OrderID:  "o_" + uuid.NewString(),
		PlacedAt: time.Now().UTC(),
		Items:    items,
		Totals:   ledger.Totals(s.Checkout),
	}
	ledger.Clear(r.Context())

	kit.WriteJSON(w, http.StatusCreated, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxCartBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(out); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
