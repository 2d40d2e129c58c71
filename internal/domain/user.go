package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	FirstName    string
	LastName     string
	Bio          string
	Phone        string
	Website      string
	Socials      map[string]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last names.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Actor returns the authorization view of the user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, Status: u.Status}
}

// Actor is the authenticated principal a request acts as. Role and Status
// are already normalized when an Actor is built.
type Actor struct {
	ID     uuid.UUID
	Role   UserRole
	Status UserStatus
}

func (a Actor) IsAdmin() bool { return a.Role == UserRoleAdmin }

func (a Actor) IsActive() bool { return a.Status == UserStatusActive }

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role   *UserRole
	Status *UserStatus
	Limit  int
	Offset int
}

// ProfileUpdate holds the self-editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Bio       *string
	Phone     *string
	Website   *string
	Socials   map[string]string
}
