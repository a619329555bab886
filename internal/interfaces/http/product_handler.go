package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/application/usecase"
	"github.com/mobileshop/pos-api/internal/domain/repository"
)

// ProductHandler handles catalog endpoints (protected).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	csv *usecase.ProductCSVUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase, csv *usecase.ProductCSVUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, csv: csv}
}

// Create creates a product.
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetByID returns one product.
// GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return notFound(c, "product")
	}
	return c.JSON(product)
}

// List lists products. Supports ?search=, ?category=, ?distributor= and
// ?lowStock=true.
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		NameContains:  c.Query("search"),
		CategoryID:    c.Query("category"),
		DistributorID: c.Query("distributor"),
		LowStock:      c.Query("lowStock") == "true",
		Limit:         c.QueryInt("limit"),
		Offset:        c.QueryInt("offset"),
	}
	products, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Update updates product fields (stock excluded).
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return notFound(c, "product")
	}
	return c.JSON(product)
}

// AdjustStock applies a signed stock delta, clamped at zero.
// PUT /api/products/stock
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid request body")
	}
	product, err := h.uc.AdjustStock(in)
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return notFound(c, "product")
	}
	return c.JSON(product)
}

// Delete deletes a product.
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Export streams the catalog as CSV.
// GET /api/products/export
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	data, err := h.csv.Export()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Send(data)
}

// Template streams an import template with one example row.
// GET /api/products/template
func (h *ProductHandler) Template(c *fiber.Ctx) error {
	data, err := h.csv.Template()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products_template.csv"`)
	return c.Send(data)
}

// Import reads products from an uploaded CSV file (multipart field "file";
// a raw CSV body also works).
// POST /api/products/import
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	var data []byte
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return badRequest(c, "cannot read uploaded file")
		}
		defer f.Close()
		result, err := h.csv.Import(f)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	}
	data = c.Body()
	if len(data) == 0 {
		return badRequest(c, "file required")
	}
	result, err := h.csv.Import(bytes.NewReader(data))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
