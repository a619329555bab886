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

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo PaymentMethodRepository implementation over PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (id, name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Name, m.SortOrder, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment method %s already exists: %w", m.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `SELECT id, name, sort_order, created_at, updated_at FROM payment_methods WHERE id = $1`
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

func (r *PaymentMethodRepo) Update(m *entity.PaymentMethod) error {
	query := `UPDATE payment_methods SET name = $2, sort_order = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Name, m.SortOrder, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

// List returns methods in the order the POS screen shows them.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, sort_order, created_at, updated_at FROM payment_methods ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
