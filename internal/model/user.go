package model

import "time"

// User represents an account record as stored in the `users` table.
// Only the bcrypt hash of the password is ever persisted; the plaintext
// exists solely in the register/login request bodies. Users are immutable
// after creation apart from the timestamps maintained by the database.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique, normalized (lowercased/trimmed) email address.
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
