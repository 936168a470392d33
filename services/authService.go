package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserView  `json:"user"`
}

type CreateAdminUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin kitchen-staff"`
}

type AuthService struct {
	users  AdminUserRepository
	tokens *helper.TokenHelper
	log    *slog.Logger
	now    func() time.Time
}

func NewAuthService(users AdminUserRepository, tokens *helper.TokenHelper, log *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log, now: time.Now}
}

// Login checks the credentials and issues a signed token. Disabled accounts
// are reported separately from bad credentials.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return LoginResult{}, ValidationError("Username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, UnauthorizedError("Invalid credentials")
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("find admin user: %w", err)
	}

	if !user.IsActive {
		return LoginResult{}, ForbiddenError("Account disabled")
	}

	if !helper.VerifyPassword(user.Password, req.Password) {
		s.log.WarnContext(ctx, "admin login rejected", slog.String("username", username))
		return LoginResult{}, UnauthorizedError("Invalid credentials")
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.ID.Hex(), now); err != nil {
		return LoginResult{}, fmt.Errorf("update last login: %w", err)
	}
	user.LastLogin = &now

	token, expiresAt, err := s.tokens.GenerateToken(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return LoginResult{}, err
	}

	s.log.InfoContext(ctx, "admin login",
		slog.String("username", user.Username),
		slog.String("role", user.Role),
	)
	return LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: UserView{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
	}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (UserView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		return UserView{}, NotFoundError("User not found")
	}
	if err != nil {
		return UserView{}, fmt.Errorf("find admin user: %w", err)
	}
	return UserView{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Name:      user.Name,
		Role:      user.Role,
		LastLogin: user.LastLogin,
	}, nil
}

// CreateUser stores a new staff account with a hashed password. It reports
// false without error when the username is already taken.
func (s *AuthService) CreateUser(ctx context.Context, req CreateAdminUserRequest) (models.AdminUser, bool, error) {
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if err := validateStruct(req); err != nil {
		return models.AdminUser{}, false, err
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.AdminUser{}, false, fmt.Errorf("find admin user: %w", err)
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return models.AdminUser{}, false, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := models.AdminUser{
		Username:   req.Username,
		Password:   hash,
		Name:       strings.TrimSpace(req.Name),
		Role:       req.Role,
		IsActive:   true,
		Created_at: now,
		Updated_at: now,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.AdminUser{}, false, fmt.Errorf("create admin user: %w", err)
	}
	return user, true, nil
}
