package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
	"github.com/rajesh2024-krita/fintcs/internal/usecase/mocks"
)

func TestUserUseCase_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateUserInput
		wantErr bool
	}{
		{
			name: "valid operator",
			input: usecase.CreateUserInput{
				EDPNumber: "EDP1001",
				Email:     "operator@coop.example",
				Name:      "Sunita Desai",
				Password:  "s3cret-pass",
				Role:      domain.RoleOperator,
			},
		},
		{
			name: "invalid email",
			input: usecase.CreateUserInput{
				EDPNumber: "EDP1002",
				Email:     "not-an-email",
				Password:  "s3cret-pass",
				Role:      domain.RoleViewer,
			},
			wantErr: true,
		},
		{
			name: "short password",
			input: usecase.CreateUserInput{
				EDPNumber: "EDP1003",
				Email:     "short@coop.example",
				Password:  "abc",
				Role:      domain.RoleViewer,
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			input: usecase.CreateUserInput{
				EDPNumber: "EDP1004",
				Email:     "role@coop.example",
				Password:  "s3cret-pass",
				Role:      domain.Role("superuser"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator(), nil)

			user, err := uc.CreateUser(context.Background(), tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.HashedPassword != "" {
				t.Error("expected hashed password to be blanked in response")
			}
			if user.Role != domain.RoleOperator {
				t.Errorf("expected role operator, got %s", user.Role)
			}
		})
	}
}

func TestUserUseCase_CreateUser_DuplicateEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(userRepo, mocks.NewMockIDGenerator(), nil)

	input := usecase.CreateUserInput{
		EDPNumber: "EDP1001",
		Email:     "dup@coop.example",
		Password:  "s3cret-pass",
		Role:      domain.RoleViewer,
	}

	if _, err := uc.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input.EDPNumber = "EDP1002"
	if _, err := uc.CreateUser(context.Background(), input); err == nil {
		t.Fatal("expected duplicate email error, got nil")
	}
}

func TestUserUseCase_Authenticate(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(userRepo, mocks.NewMockIDGenerator(), nil)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		EDPNumber: "EDP1001",
		Email:     "auth@coop.example",
		Name:      "Auth User",
		Password:  "s3cret-pass",
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		user, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
			Email:    "auth@coop.example",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.HashedPassword != "" {
			t.Error("expected hashed password to be blanked")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
			Email:    "auth@coop.example",
			Password: "wrong-pass",
		})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
			Email:    "nobody@coop.example",
			Password: "s3cret-pass",
		})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateUser_ChangesRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(userRepo, mocks.NewMockIDGenerator(), nil)

	created, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		EDPNumber: "EDP1001",
		Email:     "promote@coop.example",
		Password:  "s3cret-pass",
		Role:      domain.RoleViewer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	role := domain.RoleOperator
	updated, err := uc.UpdateUser(context.Background(), usecase.UpdateUserInput{
		ID:   created.ID,
		Role: &role,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != domain.RoleOperator {
		t.Errorf("expected role operator, got %s", updated.Role)
	}
}
