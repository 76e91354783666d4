// Package types provides type definitions for structured data used throughout the career-guide system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Role values accepted at signup.
const (
	RoleApplicant = "applicant"
	RoleCompany   = "company"
)

// SignupRequest represents the request to register a new user.
// Profile fields are enumerated per role variant; unrecognized body fields
// are rejected at the decoding boundary.
type SignupRequest struct {
	Role          string `json:"role" validate:"required,oneof=applicant company"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	ContactNumber string `json:"contactNumber" validate:"required"`

	// Applicant profile
	FullName         string `json:"fullName,omitempty"`
	NameWithInitials string `json:"nameWithInitials,omitempty"`
	Birthday         string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender           string `json:"gender,omitempty"`

	// Company profile
	CompanyName        string `json:"companyName,omitempty"`
	Industry           string `json:"industry,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	BranchLocation     string `json:"branchLocation,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the minimal user view returned with a login token.
// Name is the applicant's full name or the company name, whichever is set.
type PublicUser struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// LoginResponse represents the login response with token and public profile.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *PublicUser `json:"user"`
}

// Profile represents a full user record for API responses, minus the
// password hash.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contactNumber"`

	FullName         string `json:"fullName,omitempty"`
	NameWithInitials string `json:"nameWithInitials,omitempty"`
	Birthday         string `json:"birthday,omitempty"`
	Gender           string `json:"gender,omitempty"`

	CompanyName        string `json:"companyName,omitempty"`
	Industry           string `json:"industry,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	BranchLocation     string `json:"branchLocation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest represents a partial profile update. Email, password
// and role are deliberately absent: callers may send them but they are
// dropped silently, never applied.
type UpdateProfileRequest struct {
	ContactNumber *string `json:"contactNumber,omitempty"`

	FullName         *string `json:"fullName,omitempty"`
	NameWithInitials *string `json:"nameWithInitials,omitempty"`
	Birthday         *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender           *string `json:"gender,omitempty"`

	CompanyName        *string `json:"companyName,omitempty"`
	Industry           *string `json:"industry,omitempty"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	BranchLocation     *string `json:"branchLocation,omitempty"`
}
