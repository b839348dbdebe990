package domain

import "time"

// Course is an uploaded study document with its generated quiz attached.
type Course struct {
	ID            string
	UserID        string
	Title         string
	DocumentURL   string
	MimeType      string
	QuestionCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the Course contract.
func (c *Course) Validate() error {
	if c.UserID == "" {
		return NewValidationError("user_id", "user ID is required")
	}
	if c.Title == "" {
		return NewValidationError("title", "title is required")
	}
	return nil
}
