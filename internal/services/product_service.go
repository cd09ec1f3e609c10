package services

import (
	"errors"

	"lojinha/internal/dto"
	"lojinha/internal/models"
	"lojinha/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo repositories.ProductRepository
	storeRepo   repositories.StoreRepository
	events      EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(
	productRepo repositories.ProductRepository,
	storeRepo repositories.StoreRepository,
	events EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
		events:      events,
	}
}

// GetAllProducts retrieves all products ordered by id, each with its store
// and the store's owner.
func (s *ProductService) GetAllProducts() ([]dto.ProductResponse, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, dto.NewProductResponse(&products[i], true))
	}
	return resp, nil
}

// CreateProduct creates a product in an existing store.
func (s *ProductService) CreateProduct(in dto.CreateProductInput) (*dto.ProductResponse, error) {
	storeID := *in.StoreID
	if _, err := s.storeRepo.GetByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	product := models.Product{Name: in.Name, Price: *in.Price, StoreID: storeID}
	if err := s.productRepo.Create(&product); err != nil {
		return nil, err
	}

	resp := dto.NewProductResponse(&product, false)
	publishEvent(s.events, "product.created", resp)
	return &resp, nil
}

// UpdateProduct replaces name and price of an existing product, and moves
// it to another store when storeId is supplied. A supplied storeId must
// reference an existing store (ErrProductStoreNotFound).
func (s *ProductService) UpdateProduct(id uint, in dto.UpdateProductInput) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if in.StoreID != nil {
		if _, err := s.storeRepo.GetByID(*in.StoreID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrProductStoreNotFound
			}
			return nil, err
		}
		product.StoreID = *in.StoreID
	}

	product.Name = in.Name
	product.Price = *in.Price
	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	resp := dto.NewProductResponse(product, false)
	publishEvent(s.events, "product.updated", resp)
	return &resp, nil
}

// DeleteProduct removes a product. Deleting an absent product is 404, the
// same contract as users and stores.
func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	publishEvent(s.events, "product.deleted", dto.ProductResponse{ID: id})
	return nil
}
