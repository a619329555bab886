package repository

import "github.com/mobileshop/pos-api/internal/domain/entity"

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	NameContains  string
	CategoryID    string
	DistributorID string
	LowStock      bool // stock at or below the low-stock threshold
	Limit         int
	Offset        int
}

// ProductRepository is the persistence port for products.
// GetForUpdate and DecrementStock are meaningful only inside a transaction.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate loads the product and locks its row (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock applies a signed delta, clamped at zero, and returns the
	// updated product. Nil when the product does not exist.
	AdjustStock(id string, delta int64) (*entity.Product, error)
	// DecrementStock subtracts qty only if stock >= qty; reports whether a row
	// was updated.
	DecrementStock(id string, qty int64) (bool, error)
	List(f ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}
