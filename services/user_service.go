package services

import (
	"context"
	"errors"
	"gin-bomtracker/constants"
	"gin-bomtracker/dto"
	"gin-bomtracker/models"
	"gin-bomtracker/repositories"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IUserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID uint) (*models.User, error)
	Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error)
	Update(ctx context.Context, userID uint, currentUserID uint, input dto.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, userID uint, currentUserID uint) error
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *UserService) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		return nil, userError(err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if err := checkUsername(username); err != nil {
		return nil, err
	}
	if err := s.ensureUsernameFree(ctx, username, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = constants.RoleUser
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     true,
	}
	if err := s.repository.Create(ctx, &user); err != nil {
		return nil, userError(err)
	}
	return &user, nil
}

// Update applies the non-nil fields of input. Admins cannot demote or
// deactivate themselves, which would lock user management for good when
// they are the last admin.
func (s *UserService) Update(ctx context.Context, userID uint, currentUserID uint, input dto.UpdateUserInput) (*models.User, error) {
	if userID == currentUserID {
		if (input.Role != nil && *input.Role != constants.RoleAdmin) || (input.IsActive != nil && !*input.IsActive) {
			return nil, ErrCannotDemoteSelf
		}
	}

	targetUser, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if err := checkUsername(username); err != nil {
			return nil, err
		}
		if username != targetUser.Username {
			if err := s.ensureUsernameFree(ctx, username, userID); err != nil {
				return nil, err
			}
			updates["username"] = username
		}
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hashedPassword)
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) == 0 {
		return targetUser, nil
	}

	updatedUser, err := s.repository.Update(ctx, userID, updates)
	if err != nil {
		return nil, userError(err)
	}
	return updatedUser, nil
}

func (s *UserService) Delete(ctx context.Context, userID uint, currentUserID uint) error {
	if userID == currentUserID {
		return ErrCannotDeleteSelf
	}
	return userError(s.repository.Delete(ctx, userID))
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string, exceptID uint) error {
	existing, err := s.repository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != exceptID {
		return ErrUsernameExists
	}
	return nil
}

func checkUsername(username string) error {
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return ErrInvalidUsername
	}
	return nil
}

func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrUsernameExists
	default:
		return err
	}
}
