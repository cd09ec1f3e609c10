package models

// Store represents a user's store. The unique index on UserID keeps the
// user-store relation one-to-one.
type Store struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	UserID   uint      `json:"userId" gorm:"uniqueIndex;not null"`
	User     User      `json:"user,omitempty"`
	Products []Product `json:"products,omitempty"`
}
