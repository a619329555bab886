package billing

import (
	"context"
	"time"

	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

// ListBillsFilter query parameters for GET /api/bills.
type ListBillsFilter struct {
	NumberContains string
	Date           string // "2006-01-02"; empty means all days
}

// GetBill loads a bill with its items and resolved references.
// Bills are immutable, so two reads of the same id always agree.
func (uc *CreateBillUseCase) GetBill(ctx context.Context, id string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.billRepo.GetItemsByBillID(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(bill, items)
}

// ListBills returns bills newest first, optionally filtered by a bill-number
// substring and a single calendar day.
func (uc *CreateBillUseCase) ListBills(ctx context.Context, f ListBillsFilter) ([]*dto.BillResponse, error) {
	filter := repository.BillFilter{NumberContains: f.NumberContains}
	if f.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", f.Date, time.UTC)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.Day = &day
	}
	bills, err := uc.billRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		items, err := uc.billRepo.GetItemsByBillID(b.ID)
		if err != nil {
			return nil, err
		}
		resp, err := uc.toResponse(b, items)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// billEntities reloads the raw entities for PDF generation.
func (uc *CreateBillUseCase) billEntities(id string) (*entity.Bill, []*entity.BillItem, *entity.Customer, error) {
	bill, err := uc.billRepo.GetByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if bill == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	items, err := uc.billRepo.GetItemsByBillID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	var customer *entity.Customer
	if bill.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(bill.CustomerID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return bill, items, customer, nil
}
