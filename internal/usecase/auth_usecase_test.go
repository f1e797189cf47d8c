package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_ibs/internal/domain/entities"
	mock_interfaces "oficina_ibs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("valid credentials yield a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admins := mock_interfaces.NewMockIAdminRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(admins, tokens)

		admins.EXPECT().GetByUsername(gomock.Any(), "ibs").Return(entities.Admin{
			ID:           "admin-1",
			Username:     "ibs",
			PasswordHash: hashPassword(t, "ibs1234"),
		}, nil)
		tokens.EXPECT().Issue("ibs").Return("jwt-token", nil)

		token, username, err := uc.Login(context.Background(), "  ibs  ", "ibs1234")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if token != "jwt-token" || username != "ibs" {
			t.Errorf("Login() = %q, %q", token, username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admins := mock_interfaces.NewMockIAdminRepository(ctrl)
		uc := NewAuthUseCase(admins, nil)

		admins.EXPECT().GetByUsername(gomock.Any(), "ibs").Return(entities.Admin{
			Username:     "ibs",
			PasswordHash: hashPassword(t, "ibs1234"),
		}, nil)

		if _, _, err := uc.Login(context.Background(), "ibs", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admins := mock_interfaces.NewMockIAdminRepository(ctrl)
		uc := NewAuthUseCase(admins, nil)

		admins.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.Admin{}, nil)

		if _, _, err := uc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, _, err := uc.Login(context.Background(), "  ", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
		if _, _, err := uc.Login(context.Background(), "ibs", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestAuthUseCase_EnsureDefaultAdmin(t *testing.T) {
	t.Run("seeds the account when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admins := mock_interfaces.NewMockIAdminRepository(ctrl)
		uc := NewAuthUseCase(admins, nil)

		admins.EXPECT().GetByUsername(gomock.Any(), "ibs").Return(entities.Admin{}, nil)
		admins.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Admin) (entities.Admin, error) {
				if a.Username != "ibs" {
					t.Errorf("username = %q, want ibs", a.Username)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("ibs1234")); err != nil {
					t.Errorf("seeded hash does not match default password: %v", err)
				}
				return a, nil
			})

		if err := uc.EnsureDefaultAdmin(context.Background()); err != nil {
			t.Fatalf("EnsureDefaultAdmin() error = %v", err)
		}
	})

	t.Run("does nothing when the account exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admins := mock_interfaces.NewMockIAdminRepository(ctrl)
		uc := NewAuthUseCase(admins, nil)

		admins.EXPECT().GetByUsername(gomock.Any(), "ibs").Return(entities.Admin{ID: "admin-1", Username: "ibs"}, nil)

		if err := uc.EnsureDefaultAdmin(context.Background()); err != nil {
			t.Fatalf("EnsureDefaultAdmin() error = %v", err)
		}
	})
}
