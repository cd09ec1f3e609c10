package models

// User represents a registered user. A user owns at most one store,
// enforced by the unique index on Store.UserID.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password string `gorm:"type:varchar(255);not null"` // No json tag for security
	Store    *Store `json:"store,omitempty"`
}
