package usecase

import (
	"context"
	"strings"
	"time"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string, tokenTTL time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, apperror.BadRequest("Username and email are required")
	}
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.AuthSession, error) {
	user, err := u.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	// Same response for unknown user and bad password so login attempts
	// cannot probe which usernames exist.
	if user == nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}

	expiresAt := time.Now().Add(u.tokenTTL)
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthSession{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
