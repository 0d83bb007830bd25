package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aurumworks/goldleaf/internal/domain"
)

const bcryptCost = 12

type AuthUC struct {
	Users  domain.UserRepo
	Secret []byte
	Expiry time.Duration
}

type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}

// Login verifies the password and issues an HS256 token.
func (uc *AuthUC) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := uc.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.ID.String(),
		"username": u.Username,
		"is_admin": u.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(uc.Expiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.Secret)
	if err != nil {
		return "", nil, fmt.Errorf("auth: sign token: %w", err)
	}
	return token, u, nil
}

// VerifyToken parses and validates a bearer token.
func (uc *AuthUC) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return uc.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	username, _ := claims["username"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	return &TokenClaims{UserID: id, Username: username, IsAdmin: isAdmin}, nil
}

// CreateUser registers a staff account with a bcrypt-hashed password.
func (uc *AuthUC) CreateUser(ctx context.Context, username, email, password string, isAdmin bool) (*domain.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}
	u := &domain.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		DateJoined:   time.Now(),
	}
	if err := uc.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
