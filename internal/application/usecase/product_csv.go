package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var productCSVHeader = []string{"name", "category", "distributor", "purchasePrice", "sellingPrice", "stock", "imei"}

// ProductCSVUseCase bulk catalog transfer as CSV. Category and distributor
// appear by name in the file and are resolved against the database on import.
type ProductCSVUseCase struct {
	products     repository.ProductRepository
	categories   repository.CategoryRepository
	distributors repository.DistributorRepository
}

func NewProductCSVUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	distributors repository.DistributorRepository,
) *ProductCSVUseCase {
	return &ProductCSVUseCase{products: products, categories: categories, distributors: distributors}
}

// Export writes the full catalog as CSV.
func (uc *ProductCSVUseCase) Export() ([]byte, error) {
	list, err := uc.products.List(repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(productCSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range list {
		categoryName, err := uc.nameOfCategory(p.CategoryID)
		if err != nil {
			return nil, err
		}
		distributorName, err := uc.nameOfDistributor(p.DistributorID)
		if err != nil {
			return nil, err
		}
		record := []string{
			p.Name,
			categoryName,
			distributorName,
			p.PurchasePrice.StringFixed(2),
			p.SellingPrice.StringFixed(2),
			strconv.FormatInt(p.Stock, 10),
			p.IMEI,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Template returns the header row plus one example line.
func (uc *ProductCSVUseCase) Template() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(productCSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	example := []string{"Galaxy A15", "Phones", "Acme Distributors", "11500.00", "13999.00", "10", ""}
	if err := w.Write(example); err != nil {
		return nil, fmt.Errorf("write csv example: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Import reads products from CSV. Bad rows are reported, not fatal: the result
// carries per-row errors alongside the rows that did import.
func (uc *ProductCSVUseCase) Import(r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	cols, err := mapCSVHeader(header)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResult{Created: []dto.NameRef{}}
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		product, err := uc.parseRow(cols, record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if err := uc.products.Create(product); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.Imported++
		result.Created = append(result.Created, dto.NameRef{ID: product.ID, Name: product.Name})
	}
	return result, nil
}

// mapCSVHeader builds a column index, tolerating reordering and extra columns.
func mapCSVHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"name", "category", "distributor", "sellingPrice", "stock"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrInvalidInput, required)
		}
	}
	return cols, nil
}

func (uc *ProductCSVUseCase) parseRow(cols map[string]int, record []string) (*entity.Product, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return nil, fmt.Errorf("name required")
	}

	category, err := uc.categories.GetByName(field("category"))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("unknown category %q", field("category"))
	}
	distributor, err := uc.distributors.GetByName(field("distributor"))
	if err != nil {
		return nil, err
	}
	if distributor == nil {
		return nil, fmt.Errorf("unknown distributor %q", field("distributor"))
	}

	sellingPrice, err := decimal.NewFromString(field("sellingPrice"))
	if err != nil || sellingPrice.IsNegative() {
		return nil, fmt.Errorf("invalid sellingPrice %q", field("sellingPrice"))
	}
	purchasePrice := decimal.Zero
	if s := field("purchasePrice"); s != "" {
		purchasePrice, err = decimal.NewFromString(s)
		if err != nil || purchasePrice.IsNegative() {
			return nil, fmt.Errorf("invalid purchasePrice %q", s)
		}
	}
	stock, err := strconv.ParseInt(field("stock"), 10, 64)
	if err != nil || stock < 0 {
		return nil, fmt.Errorf("invalid stock %q", field("stock"))
	}

	now := time.Now().UTC()
	return &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		CategoryID:    category.ID,
		DistributorID: distributor.ID,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Stock:         stock,
		IMEI:          field("imei"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (uc *ProductCSVUseCase) nameOfCategory(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	c, err := uc.categories.GetByID(id)
	if err != nil || c == nil {
		return "", err
	}
	return c.Name, nil
}

func (uc *ProductCSVUseCase) nameOfDistributor(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	d, err := uc.distributors.GetByID(id)
	if err != nil || d == nil {
		return "", err
	}
	return d.Name, nil
}
