package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// vatRatePercent is the VAT applied at creation time. The value is stored on
// every bill so a future rate change never rewrites history.
var vatRatePercent = decimal.NewFromInt(5)

// maxBillNumberAttempts bounds the retry loop when two requests race for the
// same bill number. The unique constraint on bills.bill_number is the
// serialization point; a losing transaction re-reads and retries.
const maxBillNumberAttempts = 5

// CreateBillUseCase turns a cart into a priced, persisted bill and decrements
// inventory, all inside a single transaction.
type CreateBillUseCase struct {
	txRunner          BillingTxRunner
	billRepo          repository.BillRepository
	customerRepo      repository.CustomerRepository
	paymentMethodRepo repository.PaymentMethodRepository
	now               func() time.Time
}

// NewCreateBillUseCase builds the use case.
func NewCreateBillUseCase(
	txRunner BillingTxRunner,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	paymentMethodRepo repository.PaymentMethodRepository,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		txRunner:          txRunner,
		billRepo:          billRepo,
		customerRepo:      customerRepo,
		paymentMethodRepo: paymentMethodRepo,
		now:               time.Now,
	}
}

// CreateBill validates the cart, snapshots prices, allocates the bill number,
// persists the bill and decrements stock. Validate-all-then-mutate-all: every
// line is checked against current stock before any decrement, and the whole
// operation is one transaction, so a failing line leaves nothing behind.
func (uc *CreateBillUseCase) CreateBill(ctx context.Context, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items array required", domain.ErrInvalidInput)
	}

	wholeDiscount := in.WholeDiscount
	if wholeDiscount.IsNegative() {
		wholeDiscount = decimal.Zero
	}

	// Malformed optional references are dropped, never an error.
	customerID := wellFormedID(in.CustomerID)
	paymentMethodID := wellFormedID(in.PaymentMethodID)

	var (
		bill  *entity.Bill
		items []*entity.BillItem
	)

	run := func(billRepo repository.BillRepository, productRepo repository.ProductRepository) error {
		var err error
		bill, items, err = uc.buildAndPersist(billRepo, productRepo, in, wholeDiscount, customerID, paymentMethodID)
		return err
	}

	var err error
	for attempt := 0; attempt < maxBillNumberAttempts; attempt++ {
		err = uc.txRunner.RunBilling(ctx, run)
		if err == nil || !errors.Is(err, domain.ErrDuplicate) {
			break
		}
		// Lost the bill-number race: the transaction rolled back, re-run it.
	}
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("allocate bill number: %w", err)
		}
		return nil, err
	}

	return uc.toResponse(bill, items)
}

// buildAndPersist executes one creation attempt inside the caller's transaction.
func (uc *CreateBillUseCase) buildAndPersist(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	in dto.CreateBillRequest,
	wholeDiscount decimal.Decimal,
	customerID, paymentMethodID string,
) (*entity.Bill, []*entity.BillItem, error) {
	now := uc.now().UTC()
	billID := uuid.New().String()

	// Pass 1: resolve and validate every line, locking each product row.
	// Invalid or unresolvable lines are dropped silently; a stock shortfall
	// aborts the whole bill.
	items := make([]*entity.BillItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity == nil || *line.Quantity < 1 {
			continue
		}
		if wellFormedID(line.ProductID) == "" {
			continue
		}
		product, err := productRepo.GetForUpdate(line.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product == nil {
			continue
		}
		qty := *line.Quantity
		if product.Stock < qty {
			return nil, nil, &domain.InsufficientStockError{ProductName: product.Name, Available: product.Stock}
		}
		discount := decimal.Zero
		if line.Discount != nil && line.Discount.IsPositive() {
			discount = *line.Discount
		}
		lineTotal := clampZero(product.SellingPrice.Mul(decimal.NewFromInt(qty)).Sub(discount))
		items = append(items, &entity.BillItem{
			BillID:    billID,
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  qty,
			UnitPrice: product.SellingPrice,
			Discount:  discount,
			Total:     lineTotal,
		})
	}
	if len(items) == 0 {
		return nil, nil, domain.ErrNoValidItems
	}

	// Aggregation.
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	afterDiscount := clampZero(subtotal.Sub(wholeDiscount))
	vatAmount := decimal.Zero
	if in.WithVat {
		vatAmount = afterDiscount.Mul(vatRatePercent).Div(decimal.NewFromInt(100))
	}
	total := afterDiscount.Add(vatAmount)

	// Number allocation happens inside the transaction; the unique constraint
	// catches a concurrent winner and the caller retries.
	prefix := billNumberPrefix(now)
	last, err := billRepo.LastNumberWithPrefix(prefix)
	if err != nil {
		return nil, nil, err
	}

	bill := &entity.Bill{
		ID:              billID,
		BillNumber:      nextBillNumber(prefix, last),
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		WithVat:         in.WithVat,
		Subtotal:        subtotal,
		WholeDiscount:   wholeDiscount,
		VatRate:         vatRatePercent,
		VatAmount:       vatAmount,
		Total:           total,
		CreatedAt:       now,
	}
	if err := billRepo.Create(bill); err != nil {
		return nil, nil, err
	}
	for _, it := range items {
		if err := billRepo.CreateItem(it); err != nil {
			return nil, nil, err
		}
	}

	// Pass 2: decrement stock. Every row is still locked and was validated
	// above, so the conditional update cannot miss, but a zero-row result
	// still aborts the transaction rather than oversell.
	for _, it := range items {
		ok, err := productRepo.DecrementStock(it.ProductID, it.Quantity)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, &domain.InsufficientStockError{ProductName: it.Name, Available: 0}
		}
	}
	return bill, items, nil
}

func (uc *CreateBillUseCase) toResponse(bill *entity.Bill, items []*entity.BillItem) (*dto.BillResponse, error) {
	resp := &dto.BillResponse{
		ID:            bill.ID,
		BillNumber:    bill.BillNumber,
		Items:         make([]dto.BillItemResponse, 0, len(items)),
		WithVat:       bill.WithVat,
		Subtotal:      bill.Subtotal,
		WholeDiscount: bill.WholeDiscount,
		VatRate:       bill.VatRate,
		VatAmount:     bill.VatAmount,
		Total:         bill.Total,
		CreatedAt:     bill.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.BillItemResponse{
			Product:   it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  it.Discount,
			Total:     it.Total,
		})
	}
	if bill.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(bill.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			resp.Customer = &dto.BillCustomerRef{
				ID:      customer.ID,
				Name:    customer.Name,
				Phone:   customer.Phone,
				Email:   customer.Email,
				Address: customer.Address,
			}
		}
	}
	if bill.PaymentMethodID != "" {
		method, err := uc.paymentMethodRepo.GetByID(bill.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if method != nil {
			resp.PaymentMethod = &dto.NameRef{ID: method.ID, Name: method.Name}
		}
	}
	return resp, nil
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// wellFormedID returns the trimmed id when it parses as a UUID, "" otherwise.
func wellFormedID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}
