package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo CustomerRepository implementation over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.Address),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT id, name, phone, email, address, created_at, updated_at FROM customers WHERE id = $1`
	var c entity.Customer
	var phone, email, address *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &phone, &email, &address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Phone, c.Email, c.Address = derefStr(phone), derefStr(email), derefStr(address)
	return &c, nil
}

func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.Phone), nullIfEmpty(c.Email), nullIfEmpty(c.Address), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List returns customers matching search against name or phone, newest first.
func (r *CustomerRepo) List(search string) ([]*entity.Customer, error) {
	query := `SELECT id, name, phone, email, address, created_at, updated_at FROM customers`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var phone, email, address *string
		if err := rows.Scan(&c.ID, &c.Name, &phone, &email, &address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Phone, c.Email, c.Address = derefStr(phone), derefStr(email), derefStr(address)
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
