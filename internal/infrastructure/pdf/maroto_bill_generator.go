// Package pdf renders the printable A4 bill handed to the customer.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shop name + address  │  Bill number + Date          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILLED TO: customer name + contact (when attached)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Rate | Discount | Amount                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Discount / VAT / GRAND TOTAL             │
//	│  FOOTER: amount in words + thank-you line                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/mobileshop/pos-api/internal/application/billing"
	domainbilling "github.com/mobileshop/pos-api/internal/domain/billing"
	"github.com/mobileshop/pos-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoBillGenerator implements billing.BillPDFGenerator using Maroto v2.
type MarotoBillGenerator struct{}

// NewMarotoBillGenerator builds the generator.
func NewMarotoBillGenerator() *MarotoBillGenerator { return &MarotoBillGenerator{} }

// GenerateBillPDF renders the bill and returns its bytes.
func (g *MarotoBillGenerator) GenerateBillPDF(
	_ context.Context,
	shop appbilling.ShopInfo,
	bill *entity.Bill,
	customer *entity.Customer,
	items []*entity.BillItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bill "+bill.BillNumber, true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(shop, bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if customer != nil {
		m.AddRows(customerRow(customer))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(bill))

	m.AddRows(line.NewRow(2))
	for _, r := range footerRows(bill) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: shop identity on the left, bill number and date on the right.
func headerRow(shop appbilling.ShopInfo, bill *entity.Bill) core.Row {
	date := bill.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s",
				nonEmpty(shop.Address, "-"),
				nonEmpty(shop.Phone, "-"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RETAIL BILL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(bill.BillNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Phone: %s   |   Email: %s",
				nonEmpty(customer.Phone, "-"),
				nonEmpty(customer.Email, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 5, align.Left),
		h("Rate", 2, align.Right),
		h("Discount", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per bill line, prices as billed (snapshots).
func tableItemRows(items []*entity.BillItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"Rs. "+formatMoney(it.UnitPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"Rs. "+formatMoney(it.Discount.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"Rs. "+formatMoney(it.Total.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totals block aligned to the right.
func totalsRow(bill *entity.Bill) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	vatLabel := "VAT:"
	if bill.WithVat {
		vatLabel = fmt.Sprintf("VAT (%s%%):", bill.VatRate.StringFixed(0))
	}

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label("Discount:"),
			label(vatLabel),
			grandLabel("GRAND TOTAL:"),
		),
		col.New(4).Add(
			value("Rs. "+formatMoney(bill.Subtotal.StringFixed(2))),
			value("Rs. "+formatMoney(bill.WholeDiscount.StringFixed(2))),
			value("Rs. "+formatMoney(bill.VatAmount.StringFixed(2))),
			grandValue("Rs. "+formatMoney(bill.Total.StringFixed(2))),
		),
		col.New(1),
	)
}

// footerRows: amount in words plus the thank-you line.
func footerRows(bill *entity.Bill) []core.Row {
	words := domainbilling.AmountInWords(bill.Total)
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Amount in words:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New(words, props.Text{Size: 8, Top: 5, Color: colorGray}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Thank you for your business. Goods once sold cannot be returned without receipt.",
				props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 3}),
		)),
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney applies Indian digit grouping to a fixed-decimal string.
// "1234567.00" -> "12,34,567.00"
func formatMoney(s string) string {
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	n := len(intPart)
	if n <= 3 {
		return intPart + frac
	}
	// last three digits, then groups of two
	buf := []byte{}
	head := intPart[:n-3]
	for i, c := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, intPart[n-3:]...)
	return string(buf) + frac
}
