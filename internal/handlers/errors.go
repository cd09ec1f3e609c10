package handlers

import (
	"errors"
	"log"

	"lojinha/internal/dto"
	"lojinha/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service failure to its HTTP response. Domain errors
// carry a fixed status and client message; anything else is unexpected:
// the cause is logged and the caller only sees the operation's fallback
// message with a 500.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado")
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, "E-mail já cadastrado")
	case errors.Is(err, services.ErrUserHasStore):
		return fail(c, fiber.StatusConflict, "Usuário já possui uma loja")
	case errors.Is(err, services.ErrUserOwnsStore):
		return fail(c, fiber.StatusConflict, "Usuário possui uma loja")
	case errors.Is(err, services.ErrStoreNotFound):
		return fail(c, fiber.StatusNotFound, "Loja não encontrada")
	case errors.Is(err, services.ErrStoreHasProducts):
		return fail(c, fiber.StatusConflict, "Loja possui produtos")
	case errors.Is(err, services.ErrProductNotFound):
		return fail(c, fiber.StatusNotFound, "Produto não encontrado")
	case errors.Is(err, services.ErrProductStoreNotFound):
		return fail(c, fiber.StatusNotFound, "Loja informada não existe")
	}
	log.Printf("%s: %v", fallback, err)
	return fail(c, fiber.StatusInternalServerError, fallback)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// badRequest returns the 400 body: one message per violated rule.
func badRequest(c *fiber.Ctx, messages []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: messages})
}

// parseID reads the numeric :id path parameter.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
