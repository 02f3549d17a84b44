package domain

import "time"

// Review links a user to a course with a rating and optional comment.
// UserID and CourseID are immutable; only the author may change rating or
// comment. The same user may review the same course more than once.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
