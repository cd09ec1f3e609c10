package handlers

import (
	"lojinha/internal/dto"
	"lojinha/internal/services"
	"lojinha/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validation.Validator) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists all users ordered by id.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return respondError(c, err, "Erro ao listar usuários")
	}
	return c.JSON(users)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var in dto.UserInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, []string{"Corpo da requisição inválido"})
	}
	if msgs := h.validate.Validate(in); msgs != nil {
		return badRequest(c, msgs)
	}

	user, err := h.service.CreateUser(in)
	if err != nil {
		return respondError(c, err, "Erro ao criar usuário")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser replaces all fields of an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}

	var in dto.UserInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, []string{"Corpo da requisição inválido"})
	}
	if msgs := h.validate.Validate(in); msgs != nil {
		return badRequest(c, msgs)
	}

	user, err := h.service.UpdateUser(id, in)
	if err != nil {
		return respondError(c, err, "Erro ao atualizar usuário")
	}
	return c.JSON(user)
}

// HandleDeleteUser removes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.service.DeleteUser(id); err != nil {
		return respondError(c, err, "Erro ao deletar usuário")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
