package models

import "time"

type User struct {
	ID           string    `json:"id" firestore:"id"`
	Email        string    `json:"email,omitempty" firestore:"email,omitempty"`
	Username     string    `json:"username" firestore:"username"`
	PasswordHash string    `json:"-" firestore:"passwordHash"` // Exclude password hash from JSON responses for security
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse pairs the user with a freshly signed session token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
