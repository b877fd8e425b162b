package models

import (
	"time"
)

// User represents a user record in the database
type User struct {
	ID        int64     `json:"id" db:"id"`                         // Sequential id, used by range reads
	UserUUID  string    `json:"userUUID" db:"user_uuid"`            // Immutable public identifier
	Username  string    `json:"username" db:"username"`             // Unique username
	Email     string    `json:"email,omitempty" db:"email"`         // Optional, unique when set
	FirstName string    `json:"firstName,omitempty" db:"first_name"` // Profile first name
	LastName  string    `json:"lastName,omitempty" db:"last_name"`  // Profile last name
	Password  string    `json:"password,omitempty" db:"password"`   // Hashed password, empty in public reads
	CreatedAt time.Time `json:"createdAt" db:"created_at"`          // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`          // Last update timestamp
}

// UserPublic is the public projection of a User.
// swagger:model UserPublic
type UserPublic struct {
	ID        int64     `json:"id" example:"1"`
	UserUUID  string    `json:"userUUID" example:"5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email,omitempty" example:"alice@example.com"`
	FirstName string    `json:"firstName,omitempty" example:"Alice"`
	LastName  string    `json:"lastName,omitempty" example:"Liddell"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the public projection of u.
func (u User) Public() UserPublic {
	return UserPublic{
		ID:        u.ID,
		UserUUID:  u.UserUUID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicUsers projects every user in users.
func PublicUsers(users []User) []UserPublic {
	out := make([]UserPublic, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

// UserCreateData is the payload of a create request.
// swagger:model UserCreateData
type UserCreateData struct {
	Username        string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Password        string `json:"password" validate:"required,min=8,max=128" example:"p@ss1234"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password" example:"p@ss1234"`
	Email           string `json:"email,omitempty" validate:"omitempty,email,max=100" example:"alice@example.com"`
	FirstName       string `json:"firstName,omitempty" validate:"max=100" example:"Alice"`
	LastName        string `json:"lastName,omitempty" validate:"max=100" example:"Liddell"`
}

// UserInsert is what the repository stores for a new user.
type UserInsert struct {
	UserUUID  string
	Username  string
	Password  string // hashed
	Email     string
	FirstName string
	LastName  string
}

// UserUpdateData is the payload of an update request.
// Nil fields are left unchanged.
// swagger:model UserUpdateData
type UserUpdateData struct {
	UserUUID        string  `json:"userUUID" validate:"required,uuid" example:"5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88"`
	CurrentPassword string  `json:"currentPassword" validate:"required" example:"p@ss1234"`
	Username        *string `json:"username,omitempty" validate:"omitempty,min=3,max=50" example:"alice2"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=8,max=128" example:"n3w-p@ss"`
	PasswordConfirm *string `json:"passwordConfirm,omitempty" validate:"omitempty,eqfield=Password" example:"n3w-p@ss"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email,max=100" example:"alice@example.org"`
	FirstName       *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName        *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
}

// MissingConfirm reports whether a new password was sent without its confirmation.
func (d UserUpdateData) MissingConfirm() bool {
	return d.Password != nil && d.PasswordConfirm == nil
}

// UserUpdate is what the repository applies to an existing user.
type UserUpdate struct {
	UserUUID  string
	Username  *string
	Password  *string // hashed
	Email     *string
	FirstName *string
	LastName  *string
}

// Empty reports whether u changes nothing.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil &&
		u.FirstName == nil && u.LastName == nil
}

// UserDeleteData is the payload of a delete request.
// swagger:model UserDeleteData
type UserDeleteData struct {
	UserUUID        string `json:"userUUID" validate:"required,uuid" example:"5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88"`
	CurrentPassword string `json:"currentPassword" validate:"required" example:"p@ss1234"`
}
