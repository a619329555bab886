package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

var _ repository.DistributorRepository = (*DistributorRepo)(nil)

// DistributorRepo DistributorRepository implementation over PostgreSQL.
type DistributorRepo struct {
	q Querier
}

func NewDistributorRepository(q Querier) *DistributorRepo {
	return &DistributorRepo{q: q}
}

func (r *DistributorRepo) Create(d *entity.Distributor) error {
	query := `
		INSERT INTO distributors (id, name, phone, address, vat_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, nullIfEmpty(d.Phone), nullIfEmpty(d.Address), nullIfEmpty(d.VatNumber),
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert distributor: %w", err)
	}
	return nil
}

func (r *DistributorRepo) GetByID(id string) (*entity.Distributor, error) {
	return r.getBy(`id = $1`, id)
}

// GetByName matches case-insensitively. Used by the CSV import to resolve
// distributor names to IDs.
func (r *DistributorRepo) GetByName(name string) (*entity.Distributor, error) {
	return r.getBy(`lower(name) = lower($1)`, name)
}

func (r *DistributorRepo) getBy(cond string, arg any) (*entity.Distributor, error) {
	query := `SELECT id, name, phone, address, vat_number, created_at, updated_at FROM distributors WHERE ` + cond
	var d entity.Distributor
	var phone, address, vatNumber *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Name, &phone, &address, &vatNumber, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distributor: %w", err)
	}
	d.Phone, d.Address, d.VatNumber = derefStr(phone), derefStr(address), derefStr(vatNumber)
	return &d, nil
}

func (r *DistributorRepo) Update(d *entity.Distributor) error {
	query := `
		UPDATE distributors
		SET name = $2, phone = $3, address = $4, vat_number = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, nullIfEmpty(d.Phone), nullIfEmpty(d.Address), nullIfEmpty(d.VatNumber), d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update distributor: %w", err)
	}
	return nil
}

func (r *DistributorRepo) List() ([]*entity.Distributor, error) {
	query := `SELECT id, name, phone, address, vat_number, created_at, updated_at FROM distributors ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list distributors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distributor
	for rows.Next() {
		var d entity.Distributor
		var phone, address, vatNumber *string
		if err := rows.Scan(&d.ID, &d.Name, &phone, &address, &vatNumber, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan distributor: %w", err)
		}
		d.Phone, d.Address, d.VatNumber = derefStr(phone), derefStr(address), derefStr(vatNumber)
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DistributorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete distributor: %w", err)
	}
	return nil
}
