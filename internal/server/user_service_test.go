package server

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandun/career-guide/internal/config"
	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/types"
)

func testUserService(store UserStore) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
}

func applicantSignup() *types.SignupRequest {
	return &types.SignupRequest{
		Role:          "applicant",
		Email:         "jane@example.com",
		Password:      "password123",
		ContactNumber: "0712345678",
		FullName:      "Jane Doe",
		Birthday:      "1999-04-12",
		Gender:        "female",
	}
}

func TestUserService_Signup(t *testing.T) {
	store := newFakeUserStore()
	svc := testUserService(store)

	profile, err := svc.Signup(context.Background(), applicantSignup())
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "applicant", profile.Role)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "1999-04-12", profile.Birthday)

	// The stored hash is bcrypt, not the raw password.
	user, err := store.GetUser(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	svc := testUserService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), applicantSignup())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), applicantSignup())
	require.Error(t, err)

	var dupErr *ErrEmailAlreadyExists
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, 409, HTTPStatus(err))
}

// conflictUserStore simulates a concurrent signup: the existence check
// passes but the insert hits the unique constraint.
type conflictUserStore struct {
	*fakeUserStore
}

func (s *conflictUserStore) CheckEmailExists(context.Context, string) (bool, error) {
	return false, nil
}

func (s *conflictUserStore) CreateUser(context.Context, *db.UserInput) (uuid.UUID, error) {
	return uuid.Nil, db.ErrDuplicateEmail
}

func TestUserService_Signup_DuplicateEmailRace(t *testing.T) {
	svc := testUserService(&conflictUserStore{fakeUserStore: newFakeUserStore()})

	_, err := svc.Signup(context.Background(), applicantSignup())
	require.Error(t, err)

	var dupErr *ErrEmailAlreadyExists
	require.True(t, errors.As(err, &dupErr), "constraint violation maps to the conflict error")
	assert.Equal(t, 409, HTTPStatus(err))
}

func TestUserService_Login(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	_, err := svc.Signup(context.Background(), applicantSignup())
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.DisplayName())
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc := testUserService(newFakeUserStore())

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Equal(t, 404, HTTPStatus(err))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	_, err := svc.Signup(context.Background(), applicantSignup())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, 401, HTTPStatus(err))
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	svc := testUserService(newFakeUserStore())
	created, err := svc.Signup(context.Background(), applicantSignup())
	require.NoError(t, err)

	name := "Jane A. Doe"
	profile, err := svc.UpdateProfile(context.Background(), created.ID, &types.UpdateProfileRequest{
		FullName: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane A. Doe", profile.FullName)
	// Untouched fields survive
	assert.Equal(t, "0712345678", profile.ContactNumber)
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := testUserService(newFakeUserStore())

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &types.UpdateProfileRequest{FullName: &name})
	require.Error(t, err)
	assert.Equal(t, 404, HTTPStatus(err))
}

func TestUserService_CompanyDisplayName(t *testing.T) {
	svc := testUserService(newFakeUserStore())

	_, err := svc.Signup(context.Background(), &types.SignupRequest{
		Role:          "company",
		Email:         "hr@acme.test",
		Password:      "password123",
		ContactNumber: "0112345678",
		CompanyName:   "Acme Corp",
		Industry:      "software",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "hr@acme.test",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", user.DisplayName())
}
