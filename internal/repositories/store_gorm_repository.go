package repositories

import (
	"fmt"

	"lojinha/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// GetAll retrieves all stores ordered by ascending id, each with its
// products and owning user loaded.
func (r *GORMStoreRepository) GetAll() ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.Preload("Products").Preload("User").Order("id ASC").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", translate(err))
	}
	return stores, nil
}

// GetByID retrieves a store by id, with its products loaded.
func (r *GORMStoreRepository) GetByID(id uint) (*models.Store, error) {
	var store models.Store
	if err := r.db.Preload("Products").First(&store, id).Error; err != nil {
		return nil, fmt.Errorf("store %d: %w", id, translate(err))
	}
	return &store, nil
}

// GetByUserID retrieves the store owned by the given user, if any.
func (r *GORMStoreRepository) GetByUserID(userID uint) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("store of user %d: %w", userID, translate(err))
	}
	return &store, nil
}

// Create inserts a new store. A second store for the same user surfaces as
// ErrDuplicate through the unique index on user_id.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	if err := r.db.Omit(clause.Associations).Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", translate(err))
	}
	return nil
}

// Update persists all fields of an existing store.
func (r *GORMStoreRepository) Update(store *models.Store) error {
	res := r.db.Omit(clause.Associations).Save(store)
	if res.Error != nil {
		return fmt.Errorf("failed to update store %d: %w", store.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store %d: %w", store.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a store by id.
func (r *GORMStoreRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Store{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete store %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store %d: %w", id, ErrNotFound)
	}
	return nil
}
