package repositories

import "lojinha/internal/models"

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	GetAll() ([]models.Store, error)
	GetByID(id uint) (*models.Store, error)
	GetByUserID(userID uint) (*models.Store, error)
	Create(store *models.Store) error
	Update(store *models.Store) error
	Delete(id uint) error
}
