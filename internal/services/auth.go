package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Renal37/laundry-service/internal/database"
	"github.com/Renal37/laundry-service/internal/models"
)

var (
	ErrUserIsAlreadyRegistered = errors.New("user is already registered")
	ErrUserIsNotExist          = errors.New("user does not exist")
	ErrPasswordIsIncorrect     = errors.New("password is incorrect")
)

type AuthService struct {
	storage AuthStorage
}

type AuthStorage interface {
	CreateUser(ctx context.Context, user database.UserDB) error
	FindUser(ctx context.Context, login string) (*database.UserDB, error)
	FindUsers(ctx context.Context) ([]database.UserDB, error)
	UpdateProfile(ctx context.Context, userID string, profile models.Profile) (*database.UserDB, error)
	UpsertAdmin(ctx context.Context, user database.UserDB) (bool, error)
}

func NewAuthService(storage AuthStorage) *AuthService {
	return &AuthService{storage: storage}
}

// Register creates a customer account.
func (auth *AuthService) Register(ctx context.Context, user models.UnknownUser) error {
	if err := validateUser(user); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = auth.storage.CreateUser(ctx, database.UserDB{
		User: models.User{
			Login: strings.TrimSpace(*user.Login),
			Hash:  string(hashedPassword),
			Role:  models.RoleCustomer,
			Profile: models.Profile{
				Name:  strings.TrimSpace(user.Name),
				Phone: strings.TrimSpace(user.Phone),
			},
		},
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			return ErrUserIsAlreadyRegistered
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (auth *AuthService) Login(ctx context.Context, user models.UnknownUser) error {
	if err := validateUser(user); err != nil {
		return err
	}

	u, err := auth.storage.FindUser(ctx, strings.TrimSpace(*user.Login))
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if u == nil {
		return ErrUserIsNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(*user.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordIsIncorrect
		}
		return fmt.Errorf("failed to compare passwords: %w", err)
	}

	return nil
}

func (auth *AuthService) GetUser(ctx context.Context, login string) (*models.User, error) {
	user, err := auth.storage.FindUser(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		return nil, ErrUserIsNotExist
	}

	return &user.User, nil
}

func (auth *AuthService) UpdateProfile(ctx context.Context, userID string, profile models.Profile) (*models.User, error) {
	profile = trimProfile(profile)
	if profile.Name == "" {
		return nil, models.NewValidationError("name is required")
	}

	user, err := auth.storage.UpdateProfile(ctx, userID, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if user == nil {
		return nil, models.ErrUserNotFound
	}

	return &user.User, nil
}

// ListUsers returns every account. Admins only.
func (auth *AuthService) ListUsers(ctx context.Context, actor *models.User) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrAccessDenied
	}

	users, err := auth.storage.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]models.User, len(users))
	for i, u := range users {
		result[i] = u.User
	}

	return result, nil
}

// EnsureAdmin creates an admin account, or resets the password of an
// existing login and promotes it. It reports whether the account is new.
func (auth *AuthService) EnsureAdmin(ctx context.Context, user models.UnknownUser, facilityName string) (bool, error) {
	if err := validateUser(user); err != nil {
		return false, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := auth.storage.UpsertAdmin(ctx, database.UserDB{
		User: models.User{
			Login: strings.TrimSpace(*user.Login),
			Hash:  string(hashedPassword),
			Role:  models.RoleAdmin,
			Profile: models.Profile{
				Name:    strings.TrimSpace(user.Name),
				Phone:   strings.TrimSpace(user.Phone),
				Address: models.Address{FacilityName: strings.TrimSpace(facilityName)},
			},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to save admin: %w", err)
	}

	return created, nil
}

func validateUser(user models.UnknownUser) error {
	if user.Login == nil || strings.TrimSpace(*user.Login) == "" {
		return models.NewValidationError("login must not be empty")
	}
	if user.Password == nil || *user.Password == "" {
		return models.NewValidationError("password must not be empty")
	}
	return nil
}

func trimProfile(p models.Profile) models.Profile {
	return models.Profile{
		Name:  strings.TrimSpace(p.Name),
		Phone: strings.TrimSpace(p.Phone),
		Address: models.Address{
			Street:       strings.TrimSpace(p.Address.Street),
			City:         strings.TrimSpace(p.Address.City),
			State:        strings.TrimSpace(p.Address.State),
			ZipCode:      strings.TrimSpace(p.Address.ZipCode),
			FacilityName: strings.TrimSpace(p.Address.FacilityName),
			RoomNumber:   strings.TrimSpace(p.Address.RoomNumber),
		},
	}
}
