// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a farmer or a customer account.
type User struct {
	ID             uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email          string       // The user's primary contact email, used as the login identifier.
	FullName       string       // The user's display name or real name.
	HashedPassword string       // Bcrypt hash of the password. Empty for social-only accounts.
	UserType       UserType     // Whether this account sells (FARMER) or buys (CUSTOMER).
	AuthProvider   AuthProvider // How the account authenticates (local credentials or a social provider).
	SocialID       string       // The user's unique ID at the social provider. Empty for local accounts.
	PhoneNumber    string       // Optional contact phone number.
	ProfileImage   string       // Optional URL of the user's profile picture.
	FarmProfile    *FarmProfile // Farmer-only fields. Nil for customers.
	IsActive       bool         // Soft-disable flag; inactive users cannot log in.
	CreatedAt      time.Time    // Timestamp of when this user account was created.
	UpdatedAt      time.Time    // Timestamp of the last modification to this user's data.
}

// FarmProfile holds the fields that only make sense for a farmer account.
type FarmProfile struct {
	FarmName        string // The farm's display name shown on crop listings.
	FarmLocation    string // Free-form location of the farm.
	FarmDescription string // A description of the farm and what it grows.
}

// IsFarmer reports whether the user sells crops.
func (u *User) IsFarmer() bool {
	return u.UserType == UserTypeFarmer
}

// IsCustomer reports whether the user buys crops.
func (u *User) IsCustomer() bool {
	return u.UserType == UserTypeCustomer
}
