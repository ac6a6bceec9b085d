package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/space-market/pos-server/internal/core/domain"
)

const productColumns = "id, name, caffeine, alcohol, energy, sugar, price, active, image, created_at, updated_at"

// ProductRepository implements ports.ProductRepository on the products table.
type ProductRepository struct {
	db  *sqlx.DB
	now func() time.Time

	listSQL   string
	findSQL   string
	insertSQL string
	updateSQL string
	deleteSQL string
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{
		db:      db,
		now:     storeNow,
		listSQL: "SELECT " + productColumns + " FROM products ORDER BY id",
		findSQL: db.Rebind("SELECT " + productColumns + " FROM products WHERE id = ?"),
		insertSQL: db.Rebind(`INSERT INTO products
			(name, caffeine, alcohol, energy, sugar, price, active, image, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
		updateSQL: db.Rebind(`UPDATE products SET
			name = ?, caffeine = ?, alcohol = ?, energy = ?, sugar = ?, price = ?, active = ?, image = ?, updated_at = ?
			WHERE id = ?`),
		deleteSQL: db.Rebind("DELETE FROM products WHERE id = ?"),
	}
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	products := []*domain.Product{}
	if err := r.db.SelectContext(ctx, &products, r.listSQL); err != nil {
		return nil, mapError(err, "list products")
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.GetContext(ctx, &p, r.findSQL, id); err != nil {
		return nil, mapError(err, fmt.Sprintf("product %d", id))
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	now := r.now()
	err := r.db.QueryRowxContext(ctx, r.insertSQL,
		p.Name, p.Caffeine, p.Alcohol, p.Energy, p.Sugar, p.Price, p.Active, p.Image, now, now,
	).Scan(&p.ID)
	if err != nil {
		return mapError(err, fmt.Sprintf("product %q", p.Name))
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	now := r.now()
	res, err := r.db.ExecContext(ctx, r.updateSQL,
		p.Name, p.Caffeine, p.Alcohol, p.Energy, p.Sugar, p.Price, p.Active, p.Image, now, p.ID,
	)
	if err != nil {
		return mapError(err, fmt.Sprintf("product %q", p.Name))
	}
	if err := requireRow(res, fmt.Sprintf("product %d", p.ID)); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.deleteSQL, id)
	if err != nil {
		return mapError(err, fmt.Sprintf("product %d", id))
	}
	return requireRow(res, fmt.Sprintf("product %d", id))
}
