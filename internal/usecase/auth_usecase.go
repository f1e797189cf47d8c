package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_ibs/internal/domain/entities"
	"oficina_ibs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers unknown user and wrong password alike; the
// caller never learns which condition failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	defaultAdminUsername = "ibs"
	defaultAdminPassword = "ibs1234"
)

// IAuthUseCase issues bearer tokens for admin users.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (token string, user string, err error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type AuthUseCase struct {
	admins interfaces.IAdminRepository
	tokens interfaces.ITokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(admins interfaces.IAdminRepository, tokens interfaces.ITokenService) *AuthUseCase {
	return &AuthUseCase{admins: admins, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", "", ErrInvalidCredentials
	}

	admin, err := u.admins.GetByUsername(ctx, username)
	if err != nil {
		return "", "", err
	}
	if admin.Username == "" {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(admin.Username)
	if err != nil {
		return "", "", err
	}
	return token, admin.Username, nil
}

// EnsureDefaultAdmin seeds the bootstrap admin account on first startup.
func (u *AuthUseCase) EnsureDefaultAdmin(ctx context.Context) error {
	admin, err := u.admins.GetByUsername(ctx, defaultAdminUsername)
	if err != nil {
		return err
	}
	if admin.Username != "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = u.admins.Create(ctx, entities.Admin{
		ID:           uuid.NewString(),
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	log.Printf("[auth][usecase] default admin created username=%s", defaultAdminUsername)
	return nil
}
