package handlers

import (
	"lojinha/internal/dto"
	"lojinha/internal/services"
	"lojinha/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validation.Validator
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService, validate *validation.Validator) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/store")
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Put("/:id", h.HandleUpdateStore)
	storeRoutes.Delete("/:id", h.HandleDeleteStore)
}

// HandleGetStores lists all stores ordered by id.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.GetAllStores()
	if err != nil {
		return respondError(c, err, "Erro ao listar lojas")
	}
	return c.JSON(stores)
}

// HandleCreateStore creates a store for an existing user.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, []string{"Corpo da requisição inválido"})
	}
	if msgs := h.validate.Validate(in); msgs != nil {
		return badRequest(c, msgs)
	}

	store, err := h.service.CreateStore(in)
	if err != nil {
		return respondError(c, err, "Erro ao criar loja")
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleUpdateStore renames an existing store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}

	var in dto.UpdateStoreInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, []string{"Corpo da requisição inválido"})
	}
	if msgs := h.validate.Validate(in); msgs != nil {
		return badRequest(c, msgs)
	}

	store, err := h.service.UpdateStore(id, in)
	if err != nil {
		return respondError(c, err, "Erro ao atualizar loja")
	}
	return c.JSON(store)
}

// HandleDeleteStore removes a store.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.service.DeleteStore(id); err != nil {
		return respondError(c, err, "Erro ao deletar loja")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
