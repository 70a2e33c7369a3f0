// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered credential record. The email acts as the login
// identifier and is unique across all records; uniqueness is enforced by the
// store, not by the application.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation.
	Name         string    // The user's display name.
	Email        string    // The user's login email. Immutable once created.
	PasswordHash string    // bcrypt digest of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this record was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}
