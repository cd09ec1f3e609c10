package services

import (
	"errors"

	"lojinha/internal/dto"
	"lojinha/internal/models"
	"lojinha/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	storeRepo   repositories.StoreRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
}

// NewStoreService creates a new StoreService.
func NewStoreService(
	storeRepo repositories.StoreRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	events EventPublisher,
) *StoreService {
	return &StoreService{
		storeRepo:   storeRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		events:      events,
	}
}

// GetAllStores retrieves all stores ordered by id, each with its products
// and owning user.
func (s *StoreService) GetAllStores() ([]dto.StoreResponse, error) {
	stores, err := s.storeRepo.GetAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		resp = append(resp, dto.NewStoreResponse(&stores[i], true))
	}
	return resp, nil
}

// CreateStore creates a store for an existing user. The owner must exist
// (ErrUserNotFound) and must not already own a store (ErrUserHasStore).
// The pre-check races with concurrent creates; the unique index on user_id
// is the authoritative guard and also maps to ErrUserHasStore.
func (s *StoreService) CreateStore(in dto.CreateStoreInput) (*dto.StoreResponse, error) {
	userID := *in.UserID

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.storeRepo.GetByUserID(userID); err == nil {
		return nil, ErrUserHasStore
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	store := models.Store{Name: in.Name, UserID: userID}
	if err := s.storeRepo.Create(&store); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserHasStore
		}
		return nil, err
	}

	resp := dto.NewStoreResponse(&store, false)
	publishEvent(s.events, "store.created", resp)
	return &resp, nil
}

// UpdateStore renames an existing store. The owner cannot be changed.
func (s *StoreService) UpdateStore(id uint, in dto.UpdateStoreInput) (*dto.StoreResponse, error) {
	store, err := s.storeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	store.Name = in.Name
	if err := s.storeRepo.Update(store); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	resp := dto.NewStoreResponse(store, false)
	publishEvent(s.events, "store.updated", resp)
	return &resp, nil
}

// DeleteStore removes a store. Deletion is restricted while the store has
// products.
func (s *StoreService) DeleteStore(id uint) error {
	if _, err := s.storeRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	count, err := s.productRepo.CountByStoreID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrStoreHasProducts
	}

	if err := s.storeRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	publishEvent(s.events, "store.deleted", dto.StoreResponse{ID: id})
	return nil
}
