package billing

import (
	"context"

	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

// BillingTxRunner runs a function inside one transaction holding the repos
// bill creation needs. Returning an error rolls everything back.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ShopInfo identifies the shop on printed bills.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// BillPDFGenerator renders the printable A4 representation of a bill.
type BillPDFGenerator interface {
	GenerateBillPDF(
		ctx context.Context,
		shop ShopInfo,
		bill *entity.Bill,
		customer *entity.Customer, // nil when the bill has no customer
		items []*entity.BillItem,
	) ([]byte, error)
}
