package catalog

import (
	"context"
	"database/sql"
	"time"
)

const loadTimeout = 5 * time.Second

// LoadProducts reads the full product table once. The result is handed to
// New; the database is not touched again for queries.
func LoadProducts(ctx context.Context, db *sql.DB) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, loadTimeout, func(ctx context.Context) error {
		rows, err := db.QueryContext(ctx, `
			SELECT id, name, description, category,
			       price, original_price, discount,
			       rating, reviews, stock, featured, image
			FROM products
			ORDER BY id ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 64)
		for rows.Next() {
			var p Product
			if err := rows.Scan(
				&p.ID, &p.Name, &p.Description, &p.Category,
				&p.Price, &p.OriginalPrice, &p.Discount,
				&p.Rating, &p.Reviews, &p.Stock, &p.Featured, &p.Image,
			); err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
