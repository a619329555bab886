package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// lowStockThreshold mirrors the catalog screen's "low stock" filter.
const lowStockThreshold = 5

const productColumns = `id, name, category_id, distributor_id, purchase_price, selling_price, stock, imei, created_at, updated_at`

// ProductRepo ProductRepository implementation over PostgreSQL (pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.CategoryID, p.DistributorID, p.PurchasePrice, p.SellingPrice,
		p.Stock, nullIfEmpty(p.IMEI), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID loads a product by ID. Nil when it does not exist.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.get(id, false)
}

// GetForUpdate loads the product and locks its row (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.get(id, true)
}

func (r *ProductRepo) get(id string, forUpdate bool) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Product
	var imei *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.DistributorID, &p.PurchasePrice, &p.SellingPrice,
		&p.Stock, &imei, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.IMEI = derefStr(imei)
	return &p, nil
}

// Update rewrites product fields. Stock is deliberately excluded: it moves
// only through AdjustStock and DecrementStock.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, distributor_id = $4, purchase_price = $5,
		    selling_price = $6, imei = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.CategoryID, p.DistributorID, p.PurchasePrice, p.SellingPrice,
		nullIfEmpty(p.IMEI), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock applies a signed delta, clamped at zero in SQL, and returns the
// updated product. Nil when the product does not exist.
func (r *ProductRepo) AdjustStock(id string, delta int64) (*entity.Product, error) {
	query := `
		UPDATE products
		SET stock = GREATEST(0, stock + $2), updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	var p entity.Product
	var imei *string
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.DistributorID, &p.PurchasePrice, &p.SellingPrice,
		&p.Stock, &imei, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	p.IMEI = derefStr(imei)
	return &p, nil
}

// DecrementStock subtracts qty only when enough stock remains. Zero rows
// affected means the condition failed.
func (r *ProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		id, qty,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List returns products newest first, applying the optional filters.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if f.NameContains != "" {
		query += ` AND name ILIKE '%' || ` + arg(f.NameContains) + ` || '%'`
	}
	if f.CategoryID != "" {
		query += ` AND category_id = ` + arg(f.CategoryID)
	}
	if f.DistributorID != "" {
		query += ` AND distributor_id = ` + arg(f.DistributorID)
	}
	if f.LowStock {
		query += fmt.Sprintf(` AND stock <= %d`, lowStockThreshold)
	}
	query += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var imei *string
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.DistributorID, &p.PurchasePrice,
			&p.SellingPrice, &p.Stock, &imei, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.IMEI = derefStr(imei)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
