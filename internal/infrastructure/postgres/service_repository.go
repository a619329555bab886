package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, customer_id, device, issue, status, estimated_cost, final_cost, created_at, updated_at`

// ServiceRepo ServiceRepository implementation over PostgreSQL.
type ServiceRepo struct {
	q Querier
}

func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func (r *ServiceRepo) Create(t *entity.ServiceTicket) error {
	query := `
		INSERT INTO service_tickets (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, nullIfEmpty(t.CustomerID), t.Device, t.Issue, t.Status,
		t.EstimatedCost, t.FinalCost, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service ticket: %w", err)
	}
	return nil
}

func (r *ServiceRepo) GetByID(id string) (*entity.ServiceTicket, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_tickets WHERE id = $1`
	t, err := scanServiceTicket(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service ticket: %w", err)
	}
	return t, nil
}

func (r *ServiceRepo) Update(t *entity.ServiceTicket) error {
	query := `
		UPDATE service_tickets
		SET customer_id = $2, device = $3, issue = $4, status = $5,
		    estimated_cost = $6, final_cost = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, nullIfEmpty(t.CustomerID), t.Device, t.Issue, t.Status,
		t.EstimatedCost, t.FinalCost, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service ticket: %w", err)
	}
	return nil
}

// List returns tickets newest first, restricted to status when non-empty.
func (r *ServiceRepo) List(status string) ([]*entity.ServiceTicket, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_tickets`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceTicket
	for rows.Next() {
		t, err := scanServiceTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service ticket: %w", err)
	}
	return nil
}

func scanServiceTicket(row rowScanner) (*entity.ServiceTicket, error) {
	var t entity.ServiceTicket
	var customerID *string
	err := row.Scan(&t.ID, &customerID, &t.Device, &t.Issue, &t.Status,
		&t.EstimatedCost, &t.FinalCost, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.CustomerID = derefStr(customerID)
	return &t, nil
}
