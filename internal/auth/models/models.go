// Package models defines the admin entity and the request/response shapes of
// the authentication endpoints.
package models

import (
	"strings"
	"time"
)

// Admin is the single privileged user role managed by this system. Emails are
// stored trimmed and lowercased and are unique across all records. The
// password hash never leaves the store layer boundary in responses.
type Admin struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultAdminName is used when an admin record carries no display name.
const DefaultAdminName = "Administrator"

// Identity is the minimal public projection of an Admin returned by
// authentication and verification. It never carries the password hash.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Identity returns the public projection of the admin.
func (a *Admin) Identity() *Identity {
	return &Identity{ID: a.ID, Email: a.Email, Name: a.Name}
}

// NormalizeEmail trims whitespace and lowercases an email address. Lookups
// and stored records both go through this so matches are exact.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LoginRequest is the POST /api/auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize prepares the request for credential lookup.
func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// AdminView is the admin projection embedded in login and me responses.
type AdminView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is the successful login envelope.
type LoginResponse struct {
	Message string    `json:"message"`
	Admin   AdminView `json:"admin"`
}

// MeResponse is the GET /api/auth/me envelope.
type MeResponse struct {
	Admin AdminView `json:"admin"`
}
