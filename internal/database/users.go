package database

import (
	"database/sql"
	"errors"

	"servicetrack/internal/models"
)

// ErrIncorrectPassword is returned when a password change fails the old
// password check. No mutation happens in that case.
var ErrIncorrectPassword = errors.New("Incorrect old password")

// GetUser performs an exact username and password match and returns the
// matching user, or nil when the credentials don't match anything.
//
// Passwords are stored and compared in plain text. That is the contract of
// the deployed system; see DESIGN.md for the open question on hashing.
func (db *DB) GetUser(username, password string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, username, password, COALESCE(role, '') FROM users
		WHERE username = ? AND password = ?`,
		username, password).Scan(&u.ID, &u.Username, &u.Password, &u.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ChangePassword re-validates the old password before overwriting. A
// failed lookup reports ErrIncorrectPassword and leaves the row untouched.
func (db *DB) ChangePassword(username, oldPassword, newPassword string) error {
	user, err := db.GetUser(username, oldPassword)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrIncorrectPassword
	}

	_, err = db.Exec(`UPDATE users SET password = ? WHERE username = ?`, newPassword, username)
	return err
}

// SeedDefaultUser inserts the admin/admin placeholder credential pair when
// the users table is empty, so a fresh install can log in.
func (db *DB) SeedDefaultUser() error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(`INSERT INTO users (username, password) VALUES (?, ?)`, "admin", "admin")
	return err
}
