package domain

// UserRole distinguishes admins from regular users.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User is an administrative account able to operate the group's books.
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	Name         *string  `json:"name,omitempty"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
