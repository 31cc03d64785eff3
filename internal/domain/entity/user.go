// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account in the ordering system. The password hash never leaves
// the credential store boundary; handlers expose only the public fields.
type User struct {
	ID           string // Hex document identifier assigned by the store.
	Email        string // Login identifier, unique across all users.
	PasswordHash string // Salted bcrypt hash of the user's password.
	IsAdmin      bool   // Grants catalog management and order administration.
}

// PublicUser is the representation of a User that is safe to serialise.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Public strips the credential material from a User.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}
