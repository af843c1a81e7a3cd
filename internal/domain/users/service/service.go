package service

import (
	"context"
	"fmt"

	"github.com/IT-Aziz/testchecker/internal/domain/model"
	"github.com/IT-Aziz/testchecker/internal/domain/users/repository"
)

// UserService содержит логику бизнес-операций для пользователей
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register регистрирует нового пользователя. Повторная регистрация
// возвращает model.ErrAlreadyRegistered без изменения существующей анкеты.
func (s *UserService) Register(ctx context.Context, user model.User) error {
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if err == model.ErrAlreadyRegistered {
			return err
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// GetByTelegramID возвращает пользователя по ID telegram или nil, если его нет
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.userRepo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by telegram ID: %w", err)
	}
	return user, nil
}

// SetRole меняет роль пользователя
func (s *UserService) SetRole(ctx context.Context, telegramID int64, role string) error {
	if err := s.userRepo.UpdateUserRole(ctx, telegramID, role); err != nil {
		if err == model.ErrNotFound {
			return err
		}
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return nil
}

// ListAll возвращает всех зарегистрированных пользователей
func (s *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}
