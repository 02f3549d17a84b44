package domain

import "time"

// Role is the closed set of account roles. Anything outside the three
// constants is rejected at the edges, so policy evaluation can match
// exhaustively.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

// User models a registered account: student, instructor, or admin.
// EnrolledCourses and Wishlist hold course IDs; the full Course objects are
// resolved lazily by the GraphQL layer.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Role            Role      `json:"role"`
	EnrolledCourses []string  `json:"-"`
	Wishlist        []string  `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
