package dto

import "lojinha/internal/models"

// ErrorResponse is the body of 404/409/500 responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of 400 responses: one message per
// violated rule, in field declaration order.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// UserSummary is the shallow user projection nested under stores.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoreSummary is the shallow store projection nested under users.
type StoreSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductSummary is the shallow product projection nested under stores.
type ProductSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// StoreNested is the store projection nested under products, carrying the
// owning user one level down.
type StoreNested struct {
	ID   uint        `json:"id"`
	Name string      `json:"name"`
	User UserSummary `json:"user"`
}

// UserResponse is the wire shape of a user. The password is never
// serialized.
type UserResponse struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Store *StoreSummary `json:"store,omitempty"`
}

// StoreResponse is the wire shape of a store.
type StoreResponse struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	UserID   uint             `json:"userId"`
	Products []ProductSummary `json:"products"`
	User     *UserSummary     `json:"user,omitempty"`
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Price   float64      `json:"price"`
	StoreID uint         `json:"storeId"`
	Store   *StoreNested `json:"store,omitempty"`
}

// NewUserResponse projects a user, including its store when loaded.
func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.Store != nil {
		resp.Store = &StoreSummary{ID: u.Store.ID, Name: u.Store.Name}
	}
	return resp
}

// NewStoreResponse projects a store with its products. The owning user is
// included only when withUser is set (list endpoint).
func NewStoreResponse(s *models.Store, withUser bool) StoreResponse {
	resp := StoreResponse{
		ID:       s.ID,
		Name:     s.Name,
		UserID:   s.UserID,
		Products: make([]ProductSummary, 0, len(s.Products)),
	}
	for _, p := range s.Products {
		resp.Products = append(resp.Products, ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	if withUser {
		resp.User = &UserSummary{ID: s.User.ID, Name: s.User.Name, Email: s.User.Email}
	}
	return resp
}

// NewProductResponse projects a product. The store (with its user) is
// included only when withStore is set (list endpoint).
func NewProductResponse(p *models.Product, withStore bool) ProductResponse {
	resp := ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, StoreID: p.StoreID}
	if withStore {
		resp.Store = &StoreNested{
			ID:   p.Store.ID,
			Name: p.Store.Name,
			User: UserSummary{ID: p.Store.User.ID, Name: p.Store.User.Name, Email: p.Store.User.Email},
		}
	}
	return resp
}
