package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/laundry-service/internal/models"
)

func ptr(s string) *string { return &s }

func TestRegisterAndLogin(t *testing.T) {
	storage := newFakeAuthStorage()
	auth := NewAuthService(storage)
	ctx := context.Background()

	user := models.UnknownUser{Login: ptr("kiran"), Password: ptr("s3cret"), Name: " Kiran ", Phone: "555"}
	require.NoError(t, auth.Register(ctx, user))

	stored := storage.users["kiran"]
	assert.Equal(t, models.RoleCustomer, stored.Role)
	assert.Equal(t, "Kiran", stored.Name)
	assert.NotEqual(t, "s3cret", stored.Hash)

	assert.ErrorIs(t, auth.Register(ctx, user), ErrUserIsAlreadyRegistered)

	require.NoError(t, auth.Login(ctx, user))
	assert.ErrorIs(t, auth.Login(ctx, models.UnknownUser{Login: ptr("kiran"), Password: ptr("wrong")}), ErrPasswordIsIncorrect)
	assert.ErrorIs(t, auth.Login(ctx, models.UnknownUser{Login: ptr("nobody"), Password: ptr("x")}), ErrUserIsNotExist)
}

func TestRegisterValidation(t *testing.T) {
	auth := NewAuthService(newFakeAuthStorage())

	tests := []models.UnknownUser{
		{},
		{Login: ptr("kiran")},
		{Login: ptr("  "), Password: ptr("x")},
		{Login: ptr("kiran"), Password: ptr("")},
	}

	for _, user := range tests {
		assert.ErrorIs(t, auth.Register(context.Background(), user), models.ErrValidation)
	}
}

func TestGetUser(t *testing.T) {
	storage := newFakeAuthStorage()
	auth := NewAuthService(storage)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, models.UnknownUser{Login: ptr("kiran"), Password: ptr("pw")}))

	user, err := auth.GetUser(ctx, "kiran")
	require.NoError(t, err)
	assert.Equal(t, "kiran", user.Login)

	_, err = auth.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserIsNotExist)
}

func TestUpdateProfile(t *testing.T) {
	storage := newFakeAuthStorage()
	auth := NewAuthService(storage)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, models.UnknownUser{Login: ptr("kiran"), Password: ptr("pw")}))
	id := storage.users["kiran"].ID

	user, err := auth.UpdateProfile(ctx, id, models.Profile{
		Name:    "Kiran R",
		Phone:   " 555-0142 ",
		Address: models.Address{City: "Pune", FacilityName: " Orchid PG "},
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0142", user.Phone)
	assert.Equal(t, "Orchid PG", user.Address.FacilityName)

	_, err = auth.UpdateProfile(ctx, id, models.Profile{Name: " "})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = auth.UpdateProfile(ctx, "missing", models.Profile{Name: "X"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	storage := newFakeAuthStorage()
	auth := NewAuthService(storage)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, models.UnknownUser{Login: ptr("a"), Password: ptr("pw")}))
	require.NoError(t, auth.Register(ctx, models.UnknownUser{Login: ptr("b"), Password: ptr("pw")}))

	_, err := auth.ListUsers(ctx, customer)
	assert.ErrorIs(t, err, models.ErrAccessDenied)

	users, err := auth.ListUsers(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestEnsureAdmin(t *testing.T) {
	storage := newFakeAuthStorage()
	auth := NewAuthService(storage)
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, models.UnknownUser{Login: ptr("owner"), Password: ptr("old")}))

	created, err := auth.EnsureAdmin(ctx, models.UnknownUser{Login: ptr("owner"), Password: ptr("new")}, "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.RoleAdmin, storage.users["owner"].Role)
	require.NoError(t, auth.Login(ctx, models.UnknownUser{Login: ptr("owner"), Password: ptr("new")}))

	created, err = auth.EnsureAdmin(ctx, models.UnknownUser{Login: ptr("root"), Password: ptr("pw"), Name: "Root"}, "Office")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Office", storage.users["root"].Address.FacilityName)

	_, err = auth.EnsureAdmin(ctx, models.UnknownUser{Login: ptr("x")}, "")
	assert.ErrorIs(t, err, models.ErrValidation)
}
