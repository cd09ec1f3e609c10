package services

import "errors"

// Domain errors returned by the services. Handlers map these to HTTP
// statuses with errors.Is; anything else is an unexpected failure (500).
var (
	ErrUserNotFound = errors.New("usuário não encontrado")
	ErrEmailTaken   = errors.New("e-mail já cadastrado")
	// ErrUserHasStore: the user already owns a store (creation conflict).
	ErrUserHasStore = errors.New("usuário já possui uma loja")
	// ErrUserOwnsStore: the user cannot be deleted while owning a store.
	ErrUserOwnsStore = errors.New("usuário possui uma loja")

	ErrStoreNotFound = errors.New("loja não encontrada")
	// ErrStoreHasProducts: the store cannot be deleted while it has products.
	ErrStoreHasProducts = errors.New("loja possui produtos")

	ErrProductNotFound = errors.New("produto não encontrado")
	// ErrProductStoreNotFound: the storeId supplied for a product does not
	// reference an existing store.
	ErrProductStoreNotFound = errors.New("loja informada não existe")
)
