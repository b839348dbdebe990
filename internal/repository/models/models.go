// Package models holds the database representations persisted by the sqlx
// repositories.
package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringSlice stores a []string as a JSON array in a text/jsonb column.
type StringSlice []string

// Value implements driver.Valuer; nil slices persist as "[]".
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner; NULL and "null" scan as empty slices.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StringSlice Scan: unsupported type %T", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// User is a registered learner.
type User struct {
	ID                string         `db:"id"` // ULID
	GoogleID          string         `db:"google_id"`
	Email             string         `db:"email"`
	Name              sql.NullString `db:"name"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
	Points            int            `db:"points"`
	Rank              string         `db:"rank"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         sql.NullTime   `db:"deleted_at"`
}

// Course is an uploaded document with a generated quiz.
type Course struct {
	ID          string       `db:"id"` // ULID
	UserID      string       `db:"user_id"`
	Title       string       `db:"title"`
	DocumentURL string       `db:"document_url"`
	MimeType    string       `db:"mime_type"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

// Question is one multiple-choice item belonging to a course.
type Question struct {
	ID            string      `db:"id"` // ULID
	CourseID      string      `db:"course_id"`
	Question      string      `db:"question"`
	Options       StringSlice `db:"options"`
	CorrectAnswer int         `db:"correct_answer"`
	Explanation   string      `db:"explanation"`
	Position      int         `db:"position"`
	CreatedAt     time.Time   `db:"created_at"`
}

// Skill is a tracked daily habit.
type Skill struct {
	ID        string       `db:"id"` // ULID
	UserID    string       `db:"user_id"`
	Name      string       `db:"name"`
	Icon      string       `db:"icon"`
	CreatedAt time.Time    `db:"created_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

// SkillLog records one completed day for a skill. (skill_id, completed_on)
// is unique.
type SkillLog struct {
	ID          string    `db:"id"` // ULID
	SkillID     string    `db:"skill_id"`
	CompletedOn time.Time `db:"completed_on"`
	CreatedAt   time.Time `db:"created_at"`
}

// Attempt is a scored answer sheet for a course quiz. UserID is null for
// guest attempts.
type Attempt struct {
	ID            string         `db:"id"` // ULID
	UserID        sql.NullString `db:"user_id"`
	CourseID      string         `db:"course_id"`
	Score         int            `db:"score"`
	Total         int            `db:"total"`
	PointsAwarded int            `db:"points_awarded"`
	AttemptedAt   time.Time      `db:"attempted_at"`
}
