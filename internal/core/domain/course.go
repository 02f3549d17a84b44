package domain

import "time"

// Course is a catalog entry owned by exactly one instructor. InstructorID is
// immutable after creation and is the basis of the ownership checks in the
// authorization policy.
//
// Rating defaults to zero and is never recomputed from reviews. ReviewIDs is
// an append-only reference list maintained by the review service; reads
// resolve reviews by querying the review collection, so a stale entry in the
// list is harmless.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	InstructorID string    `json:"instructor_id"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Rating       float64   `json:"rating"`
	ReviewIDs    []string  `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
