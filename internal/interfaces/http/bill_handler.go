package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/billing"
	"github.com/mobileshop/pos-api/internal/application/dto"
)

// BillHandler handles the billing endpoints (protected).
type BillHandler struct {
	uc  *billing.CreateBillUseCase
	pdf *billing.PDFUseCase
}

// NewBillHandler builds the handler.
func NewBillHandler(uc *billing.CreateBillUseCase, pdf *billing.PDFUseCase) *BillHandler {
	return &BillHandler{uc: uc, pdf: pdf}
}

// Create creates a bill and decrements stock in the same transaction.
// POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	bill, err := h.uc.CreateBill(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// GetByID returns one bill with its items.
// GET /api/bills/:id
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id required")
	}
	bill, err := h.uc.GetBill(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// List returns bills newest first. Supports ?search= (bill number substring)
// and ?date=YYYY-MM-DD.
// GET /api/bills
func (h *BillHandler) List(c *fiber.Ctx) error {
	filter := billing.ListBillsFilter{
		NumberContains: c.Query("search"),
		Date:           c.Query("date"),
	}
	bills, err := h.uc.ListBills(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bills)
}

// DownloadPDF streams the printable bill.
// GET /api/bills/:id/pdf
func (h *BillHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "id required")
	}
	pdfBytes, filename, err := h.pdf.DownloadBillPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
