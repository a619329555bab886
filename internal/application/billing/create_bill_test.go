package billing

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

const (
	phoneID    = "11111111-1111-1111-1111-111111111111"
	caseID     = "22222222-2222-2222-2222-222222222222"
	customerID = "33333333-3333-3333-3333-333333333333"
	methodID   = "44444444-4444-4444-4444-444444444444"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i64(n int64) *int64 { return &n }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ── in-memory fakes ──

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(id string, delta int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) stock(id string) int64 {
	return r.products[id].Stock
}

type fakeBillRepo struct {
	bills []*entity.Bill
	items []*entity.BillItem
	// failCreates makes the next N Create calls fail with ErrDuplicate,
	// simulating a lost bill-number race.
	failCreates int
}

func (r *fakeBillRepo) Create(b *entity.Bill) error {
	if r.failCreates > 0 {
		r.failCreates--
		return domain.ErrDuplicate
	}
	for _, existing := range r.bills {
		if existing.BillNumber == b.BillNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *b
	r.bills = append(r.bills, &cp)
	return nil
}

func (r *fakeBillRepo) CreateItem(item *entity.BillItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeBillRepo) GetByID(id string) (*entity.Bill, error) {
	for _, b := range r.bills {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) GetItemsByBillID(billID string) ([]*entity.BillItem, error) {
	var out []*entity.BillItem
	for _, it := range r.items {
		if it.BillID == billID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) LastNumberWithPrefix(prefix string) (string, error) {
	var matching []string
	for _, b := range r.bills {
		if strings.HasPrefix(b.BillNumber, prefix) {
			matching = append(matching, b.BillNumber)
		}
	}
	if len(matching) == 0 {
		return "", nil
	}
	sort.Slice(matching, func(i, j int) bool {
		if len(matching[i]) != len(matching[j]) {
			return len(matching[i]) > len(matching[j])
		}
		return matching[i] > matching[j]
	})
	return matching[0], nil
}

func (r *fakeBillRepo) List(repository.BillFilter) ([]*entity.Bill, error) {
	return r.bills, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) Update(*entity.Customer) error                 { return nil }
func (r *fakeCustomerRepo) List(string) ([]*entity.Customer, error)       { return nil, nil }
func (r *fakeCustomerRepo) Delete(string) error                           { return nil }

type fakePaymentMethodRepo struct {
	methods map[string]*entity.PaymentMethod
}

func (r *fakePaymentMethodRepo) Create(m *entity.PaymentMethod) error { r.methods[m.ID] = m; return nil }
func (r *fakePaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return r.methods[id], nil
}
func (r *fakePaymentMethodRepo) Update(*entity.PaymentMethod) error           { return nil }
func (r *fakePaymentMethodRepo) List() ([]*entity.PaymentMethod, error)       { return nil, nil }
func (r *fakePaymentMethodRepo) Delete(string) error                          { return nil }

// fakeTxRunner snapshots repo state before fn and restores it on error, which
// is how a real transaction rollback behaves.
type fakeTxRunner struct {
	billRepo    *fakeBillRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) RunBilling(_ context.Context, fn func(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
) error) error {
	billsBackup := make([]*entity.Bill, len(r.billRepo.bills))
	for i, b := range r.billRepo.bills {
		cp := *b
		billsBackup[i] = &cp
	}
	itemsBackup := make([]*entity.BillItem, len(r.billRepo.items))
	for i, it := range r.billRepo.items {
		cp := *it
		itemsBackup[i] = &cp
	}
	productsBackup := make(map[string]*entity.Product, len(r.productRepo.products))
	for id, p := range r.productRepo.products {
		cp := *p
		productsBackup[id] = &cp
	}

	if err := fn(r.billRepo, r.productRepo); err != nil {
		r.billRepo.bills = billsBackup
		r.billRepo.items = itemsBackup
		r.productRepo.products = productsBackup
		return err
	}
	return nil
}

type billFixture struct {
	uc       *CreateBillUseCase
	bills    *fakeBillRepo
	products *fakeProductRepo
}

func newBillFixture(t *testing.T) *billFixture {
	t.Helper()
	products := newFakeProductRepo(
		&entity.Product{ID: phoneID, Name: "Galaxy A15", SellingPrice: dec("9999"), Stock: 25},
		&entity.Product{ID: caseID, Name: "Clear Case", SellingPrice: dec("299"), Stock: 100},
	)
	bills := &fakeBillRepo{}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		customerID: {ID: customerID, Name: "Ravi Kumar", Phone: "9800000001"},
	}}
	methods := &fakePaymentMethodRepo{methods: map[string]*entity.PaymentMethod{
		methodID: {ID: methodID, Name: "Cash"},
	}}
	uc := NewCreateBillUseCase(&fakeTxRunner{billRepo: bills, productRepo: products}, bills, customers, methods)
	uc.now = func() time.Time { return testNow }
	return &billFixture{uc: uc, bills: bills, products: products}
}

// ── tests ──

func TestCreateBill_ComputesTotalsWithVat(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items:   []dto.BillItemRequest{{ProductID: phoneID, Quantity: i64(2)}},
		WithVat: true,
	})
	require.NoError(t, err)

	assert.True(t, dec("19998").Equal(resp.Subtotal), "subtotal = 2 x 9999, got %s", resp.Subtotal)
	assert.True(t, dec("999.90").Equal(resp.VatAmount), "vat = 5%% of 19998, got %s", resp.VatAmount)
	assert.True(t, dec("20997.90").Equal(resp.Total), "total, got %s", resp.Total)
	assert.True(t, dec("5").Equal(resp.VatRate))
	assert.Equal(t, "B202609010001", resp.BillNumber)
	assert.Equal(t, int64(23), f.products.stock(phoneID), "stock decremented by the billed quantity")
}

func TestCreateBill_WholeDiscountAppliedBeforeVat(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items:         []dto.BillItemRequest{{ProductID: phoneID, Quantity: i64(2)}},
		WithVat:       true,
		WholeDiscount: dec("2000"),
	})
	require.NoError(t, err)

	assert.True(t, dec("19998").Equal(resp.Subtotal))
	assert.True(t, dec("899.90").Equal(resp.VatAmount), "vat on the discounted base, got %s", resp.VatAmount)
	assert.True(t, dec("18897.90").Equal(resp.Total), "got %s", resp.Total)
}

func TestCreateBill_WithoutVat(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{{ProductID: phoneID, Quantity: i64(1)}},
	})
	require.NoError(t, err)

	assert.False(t, resp.WithVat)
	assert.True(t, resp.VatAmount.IsZero())
	assert.True(t, dec("9999").Equal(resp.Total))
}

func TestCreateBill_InsufficientStockAbortsEverything(t *testing.T) {
	f := newBillFixture(t)

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: caseID, Quantity: i64(2)},
			{ProductID: phoneID, Quantity: i64(30)}, // only 25 in stock
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Galaxy A15", stockErr.ProductName)
	assert.Equal(t, int64(25), stockErr.Available)

	// nothing persisted, nothing decremented; the valid first line included
	assert.Empty(t, f.bills.bills)
	assert.Empty(t, f.bills.items)
	assert.Equal(t, int64(100), f.products.stock(caseID))
	assert.Equal(t, int64(25), f.products.stock(phoneID))
}

func TestCreateBill_SkipsInvalidLinesSilently(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "", Quantity: i64(1)},                                          // no product
			{ProductID: "not-a-uuid", Quantity: i64(1)},                                // malformed id
			{ProductID: "99999999-9999-9999-9999-999999999999", Quantity: i64(1)},      // unknown product
			{ProductID: phoneID, Quantity: nil},                                        // missing quantity
			{ProductID: phoneID, Quantity: i64(0)},                                     // zero quantity
			{ProductID: caseID, Quantity: i64(3)},                                      // the one valid line
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, caseID, resp.Items[0].Product)
	assert.Equal(t, int64(3), resp.Items[0].Quantity)
	assert.True(t, dec("897").Equal(resp.Subtotal))
	assert.Equal(t, int64(97), f.products.stock(caseID))
}

func TestCreateBill_AllLinesInvalid(t *testing.T) {
	f := newBillFixture(t)

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: "not-a-uuid", Quantity: i64(1)},
			{ProductID: phoneID, Quantity: i64(-3)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNoValidItems)
	assert.Empty(t, f.bills.bills)
}

func TestCreateBill_EmptyItems(t *testing.T) {
	f := newBillFixture(t)

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateBill_NegativeWholeDiscountClamped(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items:         []dto.BillItemRequest{{ProductID: caseID, Quantity: i64(1)}},
		WholeDiscount: dec("-500"),
	})
	require.NoError(t, err)
	assert.True(t, resp.WholeDiscount.IsZero())
	assert.True(t, dec("299").Equal(resp.Total))
}

func TestCreateBill_OversizedDiscountsClampAtZero(t *testing.T) {
	f := newBillFixture(t)

	// line discount larger than the line, whole discount larger than the bill
	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: caseID, Quantity: i64(1), Discount: decPtr("1000")},
		},
		WithVat:       true,
		WholeDiscount: dec("50"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Items[0].Total.IsZero(), "line total clamped at zero")
	assert.True(t, resp.Subtotal.IsZero())
	assert.True(t, resp.VatAmount.IsZero(), "vat base clamped at zero")
	assert.True(t, resp.Total.IsZero())
}

func TestCreateBill_TotalInvariant(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{
			{ProductID: phoneID, Quantity: i64(1), Discount: decPtr("499")},
			{ProductID: caseID, Quantity: i64(2)},
		},
		WithVat:       true,
		WholeDiscount: dec("100"),
	})
	require.NoError(t, err)

	itemSum := decimal.Zero
	for _, it := range resp.Items {
		itemSum = itemSum.Add(it.Total)
	}
	assert.True(t, itemSum.Equal(resp.Subtotal), "subtotal is the sum of line totals")

	base := resp.Subtotal.Sub(resp.WholeDiscount)
	if base.IsNegative() {
		base = decimal.Zero
	}
	assert.True(t, base.Add(resp.VatAmount).Equal(resp.Total),
		"total = max(0, subtotal - wholeDiscount) + vatAmount")
}

func TestCreateBill_SequentialNumbersSameDay(t *testing.T) {
	f := newBillFixture(t)

	for i, want := range []string{"B202609010001", "B202609010002", "B202609010003"} {
		resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
			Items: []dto.BillItemRequest{{ProductID: caseID, Quantity: i64(1)}},
		})
		require.NoError(t, err, "bill %d", i+1)
		assert.Equal(t, want, resp.BillNumber)
	}
}

func TestCreateBill_RetriesOnBillNumberRace(t *testing.T) {
	f := newBillFixture(t)
	f.bills.failCreates = 2 // lose the race twice, then win

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{{ProductID: phoneID, Quantity: i64(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "B202609010001", resp.BillNumber)
	assert.Equal(t, int64(24), f.products.stock(phoneID), "stock decremented exactly once")
}

func TestCreateBill_GivesUpAfterMaxRetries(t *testing.T) {
	f := newBillFixture(t)
	f.bills.failCreates = maxBillNumberAttempts

	_, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{{ProductID: phoneID, Quantity: i64(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, int64(25), f.products.stock(phoneID), "every attempt rolled back")
}

func TestCreateBill_ResolvesOptionalReferences(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items:           []dto.BillItemRequest{{ProductID: caseID, Quantity: i64(1)}},
		CustomerID:      customerID,
		PaymentMethodID: methodID,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Ravi Kumar", resp.Customer.Name)
	require.NotNil(t, resp.PaymentMethod)
	assert.Equal(t, "Cash", resp.PaymentMethod.Name)
}

func TestCreateBill_MalformedOptionalReferencesDropped(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items:           []dto.BillItemRequest{{ProductID: caseID, Quantity: i64(1)}},
		CustomerID:      "walk-in",
		PaymentMethodID: "cash",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Customer)
	assert.Nil(t, resp.PaymentMethod)
}

func TestCreateBill_SnapshotsNameAndPrice(t *testing.T) {
	f := newBillFixture(t)

	resp, err := f.uc.CreateBill(context.Background(), dto.CreateBillRequest{
		Items: []dto.BillItemRequest{{ProductID: phoneID, Quantity: i64(1)}},
	})
	require.NoError(t, err)

	// reprice and rename after the sale
	p, _ := f.products.GetByID(phoneID)
	p.Name = "Galaxy A15 (2027)"
	p.SellingPrice = dec("8999")
	require.NoError(t, f.products.Update(p))

	stored, err := f.uc.GetBill(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Galaxy A15", stored.Items[0].Name)
	assert.True(t, dec("9999").Equal(stored.Items[0].UnitPrice))
	assert.True(t, stored.Total.Equal(resp.Total))
}

func TestGetBill_NotFound(t *testing.T) {
	f := newBillFixture(t)
	_, err := f.uc.GetBill(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListBills_BadDate(t *testing.T) {
	f := newBillFixture(t)
	_, err := f.uc.ListBills(context.Background(), ListBillsFilter{Date: "not-a-date"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
