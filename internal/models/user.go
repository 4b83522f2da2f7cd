package models

// User maps the users table. email is unique.
type User struct {
	UserID       string  `db:"user_id"`
	Email        string  `db:"email"`
	Name         *string `db:"name"`
	PasswordHash string  `db:"password_hash"`
	Role         string  `db:"role"`
	AuditFields
}
