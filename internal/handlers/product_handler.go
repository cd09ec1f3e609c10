package handlers

import (
	"lojinha/internal/dto"
	"lojinha/internal/services"
	"lojinha/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists all products ordered by id.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err, "Erro ao listar produtos")
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a product in an existing store.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, []string{"Corpo da requisição inválido"})
	}
	if msgs := h.validate.Validate(in); msgs != nil {
		return badRequest(c, msgs)
	}

	product, err := h.service.CreateProduct(in)
	if err != nil {
		return respondError(c, err, "Erro ao criar produto")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces name and price of an existing product, and
// optionally moves it to another store.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}

	var in dto.UpdateProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, []string{"Corpo da requisição inválido"})
	}
	if msgs := h.validate.Validate(in); msgs != nil {
		return badRequest(c, msgs)
	}

	product, err := h.service.UpdateProduct(id, in)
	if err != nil {
		return respondError(c, err, "Erro ao atualizar produto")
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondError(c, err, "Erro ao deletar produto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
