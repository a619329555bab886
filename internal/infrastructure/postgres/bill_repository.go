package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

const billColumns = `id, bill_number, customer_id, payment_method_id, with_vat, subtotal, whole_discount, vat_rate, vat_amount, total, created_at`

// BillRepo BillRepository implementation over PostgreSQL (pool or tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository builds the bill persistence adapter. Pass pool or tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persists the bill header. The UNIQUE constraint on bill_number is the
// last line of defense against concurrent allocation of the same number.
func (r *BillRepo) Create(b *entity.Bill) error {
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.BillNumber, nullIfEmpty(b.CustomerID), nullIfEmpty(b.PaymentMethodID),
		b.WithVat, b.Subtotal, b.WholeDiscount, b.VatRate, b.VatAmount, b.Total, b.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bill number %s already exists: %w", b.BillNumber, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateItem persists one bill line.
func (r *BillRepo) CreateItem(item *entity.BillItem) error {
	query := `
		INSERT INTO bill_items (id, bill_id, product_id, name, quantity, unit_price, discount, total)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.BillID, item.ProductID, item.Name, item.Quantity,
		item.UnitPrice, item.Discount, item.Total,
	)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// GetByID loads a bill header by ID. Nil when it does not exist.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	b, err := scanBill(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// GetItemsByBillID returns the bill's lines in insertion order.
func (r *BillRepo) GetItemsByBillID(billID string) ([]*entity.BillItem, error) {
	query := `
		SELECT bill_id, product_id, name, quantity, unit_price, discount, total
		FROM bill_items WHERE bill_id = $1 ORDER BY created_seq`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	var items []*entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.BillID, &it.ProductID, &it.Name, &it.Quantity,
			&it.UnitPrice, &it.Discount, &it.Total); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// LastNumberWithPrefix returns the highest bill number for the prefix.
// Ordering by length first keeps a widened suffix ("10000") above "9999",
// which plain string ordering would get wrong.
func (r *BillRepo) LastNumberWithPrefix(prefix string) (string, error) {
	query := `
		SELECT bill_number FROM bills
		WHERE bill_number LIKE $1 || '%'
		ORDER BY length(bill_number) DESC, bill_number DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, prefix).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last bill number: %w", err)
	}
	return number, nil
}

// List returns bill headers newest first, applying the optional filters.
func (r *BillRepo) List(f repository.BillFilter) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if f.NumberContains != "" {
		query += ` AND bill_number ILIKE '%' || ` + arg(f.NumberContains) + ` || '%'`
	}
	if f.Day != nil {
		d := f.Day.UTC()
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		query += ` AND created_at >= ` + arg(start) + ` AND created_at < ` + arg(start.AddDate(0, 0, 1))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var bills []*entity.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (*entity.Bill, error) {
	var b entity.Bill
	var customerID, paymentMethodID *string
	err := row.Scan(&b.ID, &b.BillNumber, &customerID, &paymentMethodID, &b.WithVat,
		&b.Subtotal, &b.WholeDiscount, &b.VatRate, &b.VatAmount, &b.Total, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	b.CustomerID = derefStr(customerID)
	b.PaymentMethodID = derefStr(paymentMethodID)
	return &b, nil
}
