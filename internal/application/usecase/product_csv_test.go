package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobileshop/pos-api/internal/application/usecase"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}
func (r *memProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *memProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                 { return nil }
func (r *memProductRepo) AdjustStock(string, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) DecrementStock(string, int64) (bool, error) { return false, nil }
func (r *memProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return r.products, nil
}
func (r *memProductRepo) Delete(string) error { return nil }

type memCategoryRepo struct {
	byName map[string]*entity.Category
}

func (r *memCategoryRepo) Create(*entity.Category) error { return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range r.byName {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.byName[strings.ToLower(name)], nil
}
func (r *memCategoryRepo) Update(*entity.Category) error     { return nil }
func (r *memCategoryRepo) List() ([]*entity.Category, error) { return nil, nil }
func (r *memCategoryRepo) Delete(string) error               { return nil }

type memDistributorRepo struct {
	byName map[string]*entity.Distributor
}

func (r *memDistributorRepo) Create(*entity.Distributor) error { return nil }
func (r *memDistributorRepo) GetByID(id string) (*entity.Distributor, error) {
	for _, d := range r.byName {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *memDistributorRepo) GetByName(name string) (*entity.Distributor, error) {
	return r.byName[strings.ToLower(name)], nil
}
func (r *memDistributorRepo) Update(*entity.Distributor) error     { return nil }
func (r *memDistributorRepo) List() ([]*entity.Distributor, error) { return nil, nil }
func (r *memDistributorRepo) Delete(string) error                  { return nil }

func newCSVFixture() (*usecase.ProductCSVUseCase, *memProductRepo) {
	products := &memProductRepo{}
	categories := &memCategoryRepo{byName: map[string]*entity.Category{
		"phones": {ID: "cat-1", Name: "Phones"},
	}}
	distributors := &memDistributorRepo{byName: map[string]*entity.Distributor{
		"acme distributors": {ID: "dist-1", Name: "Acme Distributors"},
	}}
	return usecase.NewProductCSVUseCase(products, categories, distributors), products
}

func TestProductCSVImport_ValidRows(t *testing.T) {
	uc, products := newCSVFixture()

	csvData := strings.Join([]string{
		"name,category,distributor,purchasePrice,sellingPrice,stock,imei",
		"Galaxy A15,Phones,Acme Distributors,11500.00,13999.00,10,",
		"Redmi 13C,phones,ACME DISTRIBUTORS,9000,10999.50,5,356789100000001",
	}, "\n")

	result, err := uc.Import(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, products.products, 2)

	p := products.products[1]
	assert.Equal(t, "Redmi 13C", p.Name)
	assert.Equal(t, "cat-1", p.CategoryID, "category resolved case-insensitively")
	assert.Equal(t, "dist-1", p.DistributorID)
	assert.True(t, decimal.RequireFromString("10999.5").Equal(p.SellingPrice))
	assert.Equal(t, int64(5), p.Stock)
	assert.Equal(t, "356789100000001", p.IMEI)
}

func TestProductCSVImport_BadRowsReportedNotFatal(t *testing.T) {
	uc, products := newCSVFixture()

	csvData := strings.Join([]string{
		"name,category,distributor,purchasePrice,sellingPrice,stock,imei",
		",Phones,Acme Distributors,0,100,1,",                // missing name
		"Widget,Gadgets,Acme Distributors,0,100,1,",         // unknown category
		"Cable,Phones,Nobody Inc,0,100,1,",                  // unknown distributor
		"Charger,Phones,Acme Distributors,0,abc,1,",         // bad price
		"Case,Phones,Acme Distributors,0,100,-2,",           // negative stock
		"Earbuds,Phones,Acme Distributors,500,999,20,",      // the good one
	}, "\n")

	result, err := uc.Import(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Len(t, result.Errors, 5)
	for i, prefix := range []string{"Row 2", "Row 3", "Row 4", "Row 5", "Row 6"} {
		assert.True(t, strings.HasPrefix(result.Errors[i], prefix),
			"error %d should name its row: %s", i, result.Errors[i])
	}
	require.Len(t, products.products, 1)
	assert.Equal(t, "Earbuds", products.products[0].Name)
}

func TestProductCSVImport_ReorderedAndExtraColumns(t *testing.T) {
	uc, products := newCSVFixture()

	csvData := strings.Join([]string{
		"stock,notes,sellingPrice,name,distributor,category",
		"3,from old sheet,10999.50,Redmi 13C,Acme Distributors,Phones",
	}, "\n")

	result, err := uc.Import(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Errors)
	require.Len(t, products.products, 1)
	assert.Equal(t, "Redmi 13C", products.products[0].Name)
	assert.Equal(t, int64(3), products.products[0].Stock)
	assert.True(t, products.products[0].PurchasePrice.IsZero(), "missing optional column defaults to zero")
}

func TestProductCSVImport_MissingColumn(t *testing.T) {
	uc, _ := newCSVFixture()

	_, err := uc.Import(strings.NewReader("name,category\nA,Phones"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "distributor")
}

func TestProductCSVImport_EmptyFile(t *testing.T) {
	uc, _ := newCSVFixture()

	_, err := uc.Import(strings.NewReader(""))
	assert.Error(t, err)
}

func TestProductCSVExport_RoundTrips(t *testing.T) {
	uc, products := newCSVFixture()
	products.products = []*entity.Product{
		{
			ID: "p1", Name: "Galaxy A15", CategoryID: "cat-1", DistributorID: "dist-1",
			PurchasePrice: decimal.RequireFromString("11500"),
			SellingPrice:  decimal.RequireFromString("13999"),
			Stock:         10,
		},
	}

	data, err := uc.Export()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,category,distributor,purchasePrice,sellingPrice,stock,imei", lines[0])
	assert.Equal(t, "Galaxy A15,Phones,Acme Distributors,11500.00,13999.00,10,", lines[1])
}

func TestProductCSVTemplate_HasHeaderAndExample(t *testing.T) {
	uc, _ := newCSVFixture()

	data, err := uc.Template()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,category,distributor,purchasePrice,sellingPrice,stock,imei", lines[0])

	// the example row must itself import cleanly
	result, err := uc.Import(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Errors)
}
