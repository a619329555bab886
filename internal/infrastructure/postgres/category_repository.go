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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo CategoryRepository implementation over PostgreSQL.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(c *entity.Category) error {
	query := `INSERT INTO categories (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %s already exists: %w", c.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.getBy(`id = $1`, id)
}

// GetByName matches case-insensitively. Used by the CSV import to resolve
// category names to IDs.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.getBy(`lower(name) = lower($1)`, name)
}

func (r *CategoryRepo) getBy(cond string, arg any) (*entity.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE ` + cond
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Update(c *entity.Category) error {
	query := `UPDATE categories SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
