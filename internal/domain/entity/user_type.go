// Package entity contains the core business objects of the project.
package entity

// UserType represents the role an account plays in the marketplace.
type UserType string

const (
	// UserTypeFarmer indicates an account that lists and sells crops.
	UserTypeFarmer UserType = "FARMER"
	// UserTypeCustomer indicates an account that buys crops.
	UserTypeCustomer UserType = "CUSTOMER"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeFarmer, UserTypeCustomer:
		return true
	default:
		return false
	}
}

// AuthProvider represents how an account proves its identity.
type AuthProvider string

const (
	// AuthProviderLocal indicates email/password credentials stored by us.
	AuthProviderLocal AuthProvider = "LOCAL"
	// AuthProviderGoogle indicates a linked Google account.
	AuthProviderGoogle AuthProvider = "GOOGLE"
	// AuthProviderKakao indicates a linked Kakao account.
	AuthProviderKakao AuthProvider = "KAKAO"
)

// String returns the string representation of the AuthProvider.
func (p AuthProvider) String() string {
	return string(p)
}

// IsValid checks if the AuthProvider is a valid value.
func (p AuthProvider) IsValid() bool {
	switch p {
	case AuthProviderLocal, AuthProviderGoogle, AuthProviderKakao:
		return true
	default:
		return false
	}
}
