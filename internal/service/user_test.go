package service

import (
	"context"
	"testing"

	"github.com/SZFO/shareit/internal/domain"
	"github.com/SZFO/shareit/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, user *domain.User) {
		user.ID = 1
	}).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "alice",
		Email: "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Create_MissingFields(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Email: "alice@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateUserInput{Name: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "alice",
		Email: "taken@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.User{
		ID:    1,
		Name:  "alice",
		Email: "alice@example.com",
	}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	name := "alicia"
	user, err := svc.Update(context.Background(), 1, domain.UpdateUserInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Update(context.Background(), 99, domain.UpdateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: 1, Name: "alice"}, {ID: 2, Name: "bob"}}

	repo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
