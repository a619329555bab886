package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

// ProductUseCase CRUD and stock adjustment for the catalog. Stock moves only
// through AdjustStock here; sales decrement it inside the billing transaction.
type ProductUseCase struct {
	repo            repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	distributorRepo repository.DistributorRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	distributorRepo repository.DistributorRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, distributorRepo: distributorRepo}
}

// Create creates a new product. Category and distributor must exist.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if in.SellingPrice.IsNegative() || in.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: prices cannot be negative", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidInput)
	}
	if err := uc.checkRef(uc.categoryExists, in.Category, "category"); err != nil {
		return nil, err
	}
	if err := uc.checkRef(uc.distributorExists, in.Distributor, "distributor"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		CategoryID:    in.Category,
		DistributorID: in.Distributor,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Stock:         in.Stock,
		IMEI:          strings.TrimSpace(in.IMEI),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID gets a product by ID. Nil when not found.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product)
}

// Update updates product fields. Stock is excluded; use AdjustStock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Category != nil {
		if err := uc.checkRef(uc.categoryExists, *in.Category, "category"); err != nil {
			return nil, err
		}
		product.CategoryID = *in.Category
	}
	if in.Distributor != nil {
		if err := uc.checkRef(uc.distributorExists, *in.Distributor, "distributor"); err != nil {
			return nil, err
		}
		product.DistributorID = *in.Distributor
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: prices cannot be negative", domain.ErrInvalidInput)
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, fmt.Errorf("%w: prices cannot be negative", domain.ErrInvalidInput)
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.IMEI != nil {
		product.IMEI = strings.TrimSpace(*in.IMEI)
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// AdjustStock applies a signed quantity delta, clamped at zero. Nil when the
// product does not exist.
func (uc *ProductUseCase) AdjustStock(in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.Quantity == nil {
		return nil, fmt.Errorf("%w: productId and quantity required", domain.ErrInvalidInput)
	}
	product, err := uc.repo.AdjustStock(in.ProductID, *in.Quantity)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product)
}

// List lists products applying the optional filters.
func (uc *ProductUseCase) List(f repository.ProductFilter) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// Delete deletes a product by ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) checkRef(exists func(string) (bool, error), id, what string) error {
	if id == "" {
		return fmt.Errorf("%w: %s required", domain.ErrInvalidInput, what)
	}
	ok, err := exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: unknown %s", domain.ErrInvalidInput, what)
	}
	return nil
}

func (uc *ProductUseCase) categoryExists(id string) (bool, error) {
	c, err := uc.categoryRepo.GetByID(id)
	return c != nil, err
}

func (uc *ProductUseCase) distributorExists(id string) (bool, error) {
	d, err := uc.distributorRepo.GetByID(id)
	return d != nil, err
}

// toResponse resolves category and distributor names for display.
func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	resp := &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Stock:         p.Stock,
		IMEI:          p.IMEI,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.CategoryID != "" {
		c, err := uc.categoryRepo.GetByID(p.CategoryID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			resp.Category = &dto.NameRef{ID: c.ID, Name: c.Name}
		}
	}
	if p.DistributorID != "" {
		d, err := uc.distributorRepo.GetByID(p.DistributorID)
		if err != nil {
			return nil, err
		}
		if d != nil {
			resp.Distributor = &dto.NameRef{ID: d.ID, Name: d.Name}
		}
	}
	return resp, nil
}
