package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

type CreateUserRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	LicenseID *uint64 `json:"licenseId" validate:"omitempty,gt=0"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password"`
	Active    *bool   `json:"active"`
	LicenseID *uint64 `json:"licenseId" validate:"omitempty,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *dbsql.User `json:"user"`
}

type UserService interface {
	RegisterUser(ctx context.Context, req CreateUserRequest) (*dbsql.User, error)
	LoginUser(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID uint64) (*dbsql.User, error)
	UpdateUser(ctx context.Context, userID uint64, req UpdateUserRequest) (*dbsql.User, error)
	ListUsers(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.User], error)
	DeactivateUser(ctx context.Context, userID uint64) error
	GrantLicense(ctx context.Context, userID, licenseID uint64) error
	RevokeLicense(ctx context.Context, userID, licenseID uint64) error
}

type userService struct {
	userRepo  UserRepository
	grantRepo LicenseGrantRepository
	jwt       *common.JWTManager
	log       *zap.Logger
}

func NewUserService(userRepo UserRepository, grantRepo LicenseGrantRepository, jwt *common.JWTManager, log *zap.Logger) UserService {
	return &userService{userRepo: userRepo, grantRepo: grantRepo, jwt: jwt, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) RegisterUser(ctx context.Context, req CreateUserRequest) (*dbsql.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := common.Validate(req); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.CheckEmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, common.ErrConflict)
	}

	hashed, err := common.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &dbsql.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hashed,
		Active:       true,
		LicenseID:    req.LicenseID,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Uint64("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// LoginUser answers ErrUnauthorized for unknown emails, inactive users and
// wrong passwords alike.
func (s *userService) LoginUser(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}
	if !user.Active {
		s.log.Info("login refused for inactive user", zap.Uint64("user_id", user.ID))
		return nil, common.ErrUnauthorized
	}
	if err := common.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.LicenseID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: user}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbsql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID uint64, req UpdateUserRequest) (*dbsql.User, error) {
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		req.Email = &email
	}
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.userRepo.CheckEmailExists(ctx, *req.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("email %s already registered: %w", *req.Email, common.ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		if err := common.ValidatePassword(*req.Password); err != nil {
			return nil, err
		}
		hashed, err := common.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.LicenseID != nil {
		user.LicenseID = req.LicenseID
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter ListFilter, page common.PageQuery) (common.Paginated[dbsql.User], error) {
	users, total, err := s.userRepo.ListUsers(ctx, filter, page)
	if err != nil {
		return common.Paginated[dbsql.User]{}, err
	}
	return common.NewPaginated(users, total, page), nil
}

func (s *userService) DeactivateUser(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Active {
		return nil
	}
	user.Active = false
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userService) GrantLicense(ctx context.Context, userID, licenseID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.LicenseID != nil && *user.LicenseID == licenseID {
		return nil
	}
	if err := s.grantRepo.Grant(ctx, userID, licenseID); err != nil {
		return err
	}
	s.log.Info("license granted", zap.Uint64("user_id", userID), zap.Uint64("license_id", licenseID))
	return nil
}

func (s *userService) RevokeLicense(ctx context.Context, userID, licenseID uint64) error {
	removed, err := s.grantRepo.Revoke(ctx, userID, licenseID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("user %d has no grant for license %d: %w", userID, licenseID, common.ErrNotFound)
	}
	return nil
}
