package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sandun/career-guide/internal/config"
	"github.com/sandun/career-guide/internal/db"
	"github.com/sandun/career-guide/internal/types"
)

// UserService provides business logic for signup, login and profile
// operations.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(db UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// profileFromUser converts a db.User to the API profile view, excluding the
// password hash.
func profileFromUser(user *db.User) *types.Profile {
	if user == nil {
		return nil
	}
	p := &types.Profile{
		ID:                 user.ID,
		Role:               user.Role,
		Email:              user.Email,
		ContactNumber:      user.ContactNumber,
		FullName:           user.FullName,
		NameWithInitials:   user.NameWithInitials,
		Gender:             user.Gender,
		CompanyName:        user.CompanyName,
		Industry:           user.Industry,
		RegistrationNumber: user.RegistrationNumber,
		BranchLocation:     user.BranchLocation,
		CreatedAt:          user.CreatedAt,
	}
	if user.Birthday != nil {
		p.Birthday = user.Birthday.Format("2006-01-02")
	}
	return p
}

// Signup registers a new user. The password is hashed before it reaches the
// store; the returned profile carries no sensitive data.
func (s *UserService) Signup(ctx context.Context, req *types.SignupRequest) (*types.Profile, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	input := &db.UserInput{
		Role:               req.Role,
		Email:              req.Email,
		PasswordHash:       passwordHash,
		ContactNumber:      req.ContactNumber,
		FullName:           req.FullName,
		NameWithInitials:   req.NameWithInitials,
		Gender:             req.Gender,
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		RegistrationNumber: req.RegistrationNumber,
		BranchLocation:     req.BranchLocation,
	}
	if req.Birthday != "" {
		birthday, err := db.ParseDate(req.Birthday)
		if err != nil {
			return nil, &ErrValidation{Field: "birthday", Message: "must be YYYY-MM-DD"}
		}
		input.Birthday = birthday
	}

	userID, err := s.db.CreateUser(ctx, input)
	if err != nil {
		// A concurrent signup can slip past the existence check above and
		// trip the unique constraint instead.
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return profileFromUser(user), nil
}

// Login authenticates a user. An unknown email and a wrong password are
// distinct failures per the API's error taxonomy.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*db.User, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{Email: req.Email}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}

// GetProfile returns the full user record minus the password hash.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return profileFromUser(user), nil
}

// UpdateProfile applies a partial update. Email, password and role never
// reach the store: the request type does not carry them, so any attempt to
// set them is dropped silently rather than rejected.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.Profile, error) {
	input := &db.ProfileUpdateInput{
		ContactNumber:      req.ContactNumber,
		FullName:           req.FullName,
		NameWithInitials:   req.NameWithInitials,
		Gender:             req.Gender,
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		RegistrationNumber: req.RegistrationNumber,
		BranchLocation:     req.BranchLocation,
	}
	if req.Birthday != nil {
		birthday, err := db.ParseDate(*req.Birthday)
		if err != nil {
			return nil, &ErrValidation{Field: "birthday", Message: "must be YYYY-MM-DD"}
		}
		input.Birthday = birthday
	}

	user, err := s.db.UpdateUserProfile(ctx, userID, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return profileFromUser(user), nil
}
