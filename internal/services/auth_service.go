package services

import (
	"context"
	"errors"
	"time"

	"hospital-management-server/internal/apperror"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/utils"
)

type SignupInput struct {
	Name     string      `json:"name" validate:"required,min=2"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=patient hospital"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the outcome of a successful signup or login.
type Session struct {
	User  models.UserSanitized `json:"user"`
	Token string               `json:"token"`
}

type AuthService struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, apperror.Validation("User already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	user := &models.User{
		Name:    in.Name,
		Email:   in.Email,
		Role:    in.Role,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return s.session(user)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if user == nil || !user.CheckPassword(in.Password) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	return s.session(user)
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := utils.GenerateToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &Session{User: user.Sanitize(), Token: token}, nil
}

// Me loads the account of the authenticated caller.
func (s *AuthService) Me(ctx context.Context, identity models.Identity) (*models.UserSanitized, error) {
	user, err := s.users.FindByID(ctx, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.Unauthorized("Unauthorized")
		}
		return nil, apperror.Internal(err)
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}
