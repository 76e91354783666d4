package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record. The password hash never serializes to JSON.
type User struct {
	ID            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	ContactNumber string    `json:"contactNumber"`

	// Applicant profile
	FullName         string `json:"fullName,omitempty"`
	NameWithInitials string `json:"nameWithInitials,omitempty"`
	Birthday         *Date  `json:"birthday,omitempty"`
	Gender           string `json:"gender,omitempty"`

	// Company profile
	CompanyName        string `json:"companyName,omitempty"`
	Industry           string `json:"industry,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	BranchLocation     string `json:"branchLocation,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName returns the applicant's full name or the company name,
// whichever is set.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.CompanyName
}

// UserInput holds the fields persisted at signup.
type UserInput struct {
	Role          string
	Email         string
	PasswordHash  string
	ContactNumber string

	FullName         string
	NameWithInitials string
	Birthday         *Date
	Gender           string

	CompanyName        string
	Industry           string
	RegistrationNumber string
	BranchLocation     string
}

// ProfileUpdateInput holds a partial profile update. Nil fields are left
// untouched. Email, password and role are not updatable here.
type ProfileUpdateInput struct {
	ContactNumber *string

	FullName         *string
	NameWithInitials *string
	Birthday         *Date
	Gender           *string

	CompanyName        *string
	Industry           *string
	RegistrationNumber *string
	BranchLocation     *string
}
