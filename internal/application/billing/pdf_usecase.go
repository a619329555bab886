package billing

import (
	"context"
	"fmt"
)

// PDFUseCase renders the printable A4 bill.
type PDFUseCase struct {
	bills     *CreateBillUseCase
	generator BillPDFGenerator
	shop      ShopInfo
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(bills *CreateBillUseCase, generator BillPDFGenerator, shop ShopInfo) *PDFUseCase {
	return &PDFUseCase{bills: bills, generator: generator, shop: shop}
}

// DownloadBillPDF loads the bill and renders it.
// Returns (pdfBytes, filename, nil) on success, domain.ErrNotFound when the
// bill does not exist.
func (uc *PDFUseCase) DownloadBillPDF(ctx context.Context, billID string) ([]byte, string, error) {
	bill, items, customer, err := uc.bills.billEntities(billID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateBillPDF(ctx, uc.shop, bill, customer, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render bill %s: %w", bill.BillNumber, err)
	}
	return pdfBytes, fmt.Sprintf("bill_%s.pdf", bill.BillNumber), nil
}
