package dto

// UserInput is the payload for creating or updating a user. Create and
// update share the same rule set.
type UserInput struct {
	Name     string `json:"name" validate:"required,fullname"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateStoreInput is the payload for creating a store.
type CreateStoreInput struct {
	Name   string `json:"name" validate:"required"`
	UserID *uint  `json:"userId" validate:"required"`
}

// UpdateStoreInput is CreateStoreInput minus userId: a store cannot be
// reassigned to another user.
type UpdateStoreInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateProductInput is the payload for creating a product.
type CreateProductInput struct {
	Name    string   `json:"name" validate:"required"`
	Price   *float64 `json:"price" validate:"required,gt=0"`
	StoreID *uint    `json:"storeId" validate:"required"`
}

// UpdateProductInput is the payload for updating a product. StoreID is
// optional; when present it must reference an existing store.
type UpdateProductInput struct {
	Name    string   `json:"name" validate:"required"`
	Price   *float64 `json:"price" validate:"required,gt=0"`
	StoreID *uint    `json:"storeId" validate:"omitempty"`
}
