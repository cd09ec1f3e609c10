package services

import (
	"errors"
	"fmt"

	"lojinha/internal/dto"
	"lojinha/internal/models"
	"lojinha/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	userRepo repositories.UserRepository
	events   EventPublisher
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		events:   events,
	}
}

// GetAllUsers retrieves all users ordered by id, each with a shallow
// projection of its store.
func (s *UserService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

// CreateUser creates a new user with a hashed password. A duplicate email
// is reported as ErrEmailTaken.
func (s *UserService) CreateUser(in dto.UserInput) (*dto.UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: string(hashed)}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	publishEvent(s.events, "user.created", dto.NewUserResponse(&user))
	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

// UpdateUser replaces all fields of an existing user.
func (s *UserService) UpdateUser(id uint, in dto.UserInput) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Password = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	publishEvent(s.events, "user.updated", dto.NewUserResponse(user))
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// DeleteUser removes a user. Deletion is restricted while the user owns a
// store.
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Store != nil {
		return ErrUserOwnsStore
	}

	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	publishEvent(s.events, "user.deleted", dto.UserResponse{ID: id})
	return nil
}
