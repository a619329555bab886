package repository

import (
	"time"

	"github.com/mobileshop/pos-api/internal/domain/entity"
)

// BillFilter narrows bill listings.
type BillFilter struct {
	NumberContains string     // case-insensitive substring of the bill number
	Day            *time.Time // restricts to a single calendar day
}

// BillRepository is the persistence port for bills. Bills are insert-only.
type BillRepository interface {
	// Create persists the bill header. Returns domain.ErrDuplicate (wrapped)
	// when the bill number is already taken.
	Create(bill *entity.Bill) error
	CreateItem(item *entity.BillItem) error
	GetByID(id string) (*entity.Bill, error)
	GetItemsByBillID(billID string) ([]*entity.BillItem, error)
	// LastNumberWithPrefix returns the highest bill number starting with
	// prefix, or "" when none exists. Widened suffixes rank above shorter ones.
	LastNumberWithPrefix(prefix string) (string, error)
	List(f BillFilter) ([]*entity.Bill, error)
}
