package cart

import "github.com/shopspring/decimal"

// Config carries the checkout constants. They are deployment configuration,
// not business logic: defaults match the storefront's observed behavior of a
// flat $5.00 shipping fee and 8% tax.
type Config struct {
	ShippingFee decimal.Decimal
	TaxRate     decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		ShippingFee: decimal.NewFromFloat(5.00),
		TaxRate:     decimal.NewFromFloat(0.08),
	}
}

type Totals struct {
	ItemCount  int             `json:"itemCount"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// Totals derives the order summary from current state. Pure read, no
// persistence. Tax is rounded to cents before it enters the grand total.
func (l *Ledger) Totals(cfg Config) Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t := Totals{
		Subtotal:   decimal.Zero,
		Shipping:   cfg.ShippingFee,
		Tax:        decimal.Zero,
		GrandTotal: decimal.Zero,
	}

	for _, ln := range l.lines {
		t.ItemCount += ln.Quantity
		line := decimal.NewFromFloat(ln.Price).Mul(decimal.NewFromInt(int64(ln.Quantity)))
		t.Subtotal = t.Subtotal.Add(line)
	}

	t.Tax = t.Subtotal.Mul(cfg.TaxRate).Round(2)
	t.GrandTotal = t.Subtotal.Add(t.Shipping).Add(t.Tax)
	return t
}
