package models

// Product represents a product sold by a store.
type Product struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"type:varchar(255);not null"`
	Price   float64 `json:"price" gorm:"not null"`
	StoreID uint    `json:"storeId" gorm:"index;not null"`
	Store   Store   `json:"store,omitempty"`
}
