package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/areeba-ilyas/E-commerce-App/internal/cart"
	"github.com/areeba-ilyas/E-commerce-App/internal/catalog"
)

var (
	phone = catalog.Product{ID: 1, Name: "Smartphone X", Category: "Electronics", Price: 899, Stock: 5}
	shoes = catalog.Product{ID: 7, Name: "Running Shoes", Category: "Fashion", Price: 20.00, Stock: 18}
	lamp  = catalog.Product{ID: 13, Name: "Table Lamp", Category: "Home", Price: 34, Stock: 40}
)

// countingStore wraps a Store and records every full-state write.
type countingStore struct {
	cart.Store
	saves int
}

func (s *countingStore) Save(ctx context.Context, key string, lines []cart.Line) error {
	s.saves++
	return s.Store.Save(ctx, key, lines)
}

func newLedger(t *testing.T) (*cart.Ledger, *countingStore) {
	t.Helper()
	store := &countingStore{Store: cart.NewMemStore()}
	return cart.NewLedger(context.Background(), store, "cart:test", nil), store
}

func TestAdd_MergesIntoExistingLine(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	lines := l.Add(ctx, phone, 1)

	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
}

func TestAdd_AppendsNewLinesInOrder(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	l.Add(ctx, shoes, 2)
	lines := l.Add(ctx, lamp, 1)

	require.Equal(t, []int{1, 7, 13}, lineIDs(lines))
}

func TestAdd_ClampsQuantityToOne(t *testing.T) {
	l, _ := newLedger(t)

	lines := l.Add(context.Background(), phone, -3)
	require.Equal(t, 1, lines[0].Quantity)
}

func TestSetQuantity_ReplacesExactly(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	lines := l.SetQuantity(ctx, phone.ID, 5)

	require.Equal(t, 5, lines[0].Quantity)
}

func TestSetQuantity_FloorRemovesLine(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 2)

	require.Empty(t, l.SetQuantity(ctx, phone.ID, 0))

	l.Add(ctx, phone, 2)
	require.Empty(t, l.SetQuantity(ctx, phone.ID, -4))
}

func TestSetQuantity_UnknownIDIsNoOpButPersists(t *testing.T) {
	l, store := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	before := store.saves

	lines := l.SetQuantity(ctx, 999, 3)
	require.Equal(t, []int{1}, lineIDs(lines))
	require.Equal(t, before+1, store.saves)
}

func TestRemove_IsIdempotent(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	l.Add(ctx, shoes, 1)

	require.Equal(t, []int{7}, lineIDs(l.Remove(ctx, phone.ID)))
	require.Equal(t, []int{7}, lineIDs(l.Remove(ctx, phone.ID)))
}

func TestClear(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	l.Add(ctx, shoes, 1)

	require.Empty(t, l.Clear(ctx))
	require.Zero(t, l.Len())
}

func TestEveryMutationPersists(t *testing.T) {
	l, store := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	l.SetQuantity(ctx, phone.ID, 3)
	l.Remove(ctx, phone.ID)
	l.Clear(ctx)

	require.Equal(t, 4, store.saves)
}

func TestTotals_Arithmetic(t *testing.T) {
	l, _ := newLedger(t)

	l.Add(context.Background(), shoes, 3) // 20.00 x 3

	got := l.Totals(cart.DefaultConfig())

	require.Equal(t, 3, got.ItemCount)
	requireDecimal(t, "60", got.Subtotal)
	requireDecimal(t, "5", got.Shipping)
	requireDecimal(t, "4.8", got.Tax)
	requireDecimal(t, "69.8", got.GrandTotal)
}

func TestTotals_CustomConfig(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	l.Add(ctx, phone, 1)
	l.Add(ctx, lamp, 2)

	cfg := cart.Config{
		ShippingFee: decimal.NewFromFloat(10),
		TaxRate:     decimal.NewFromFloat(0.2),
	}
	got := l.Totals(cfg)

	require.Equal(t, 3, got.ItemCount)
	requireDecimal(t, "967", got.Subtotal)    // 899 + 2*34
	requireDecimal(t, "193.4", got.Tax)       // 20%
	requireDecimal(t, "1170.4", got.GrandTotal)
}

func TestNewLedger_RestoresPriorState(t *testing.T) {
	ctx := context.Background()
	store := cart.NewMemStore()

	first := cart.NewLedger(ctx, store, "cart:s1", nil)
	first.Add(ctx, phone, 2)
	first.Add(ctx, shoes, 1)

	second := cart.NewLedger(ctx, store, "cart:s1", nil)
	require.Equal(t, first.Lines(), second.Lines())
}

func TestNewLedger_LoadFailureStartsEmpty(t *testing.T) {
	ctx := context.Background()
	l := cart.NewLedger(ctx, failingStore{}, "cart:s1", nil)

	require.Zero(t, l.Len())

	// The ledger still works; persistence failures stay local.
	lines := l.Add(ctx, phone, 1)
	require.Len(t, lines, 1)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]cart.Line, error) {
	return nil, errors.New("boom")
}
func (failingStore) Save(context.Context, string, []cart.Line) error { return errors.New("boom") }
func (failingStore) Ping(context.Context) error                      { return errors.New("boom") }

func lineIDs(lines []cart.Line) []int {
	out := make([]int, len(lines))
	for i, ln := range lines {
		out[i] = ln.ID
	}
	return out
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}
