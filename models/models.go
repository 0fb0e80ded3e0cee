package models

import "time"

// Prompt workflow statuses.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

// DefaultProjectName is the sentinel project every prompt falls back to.
// It is seeded at initialization and can never be deleted.
const DefaultProjectName = "Default"

// ValidStatus reports whether s is one of the known prompt statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusActive || s == StatusArchived
}

// Project groups prompts and carries a free-text whiteboard
type Project struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"type:text;not null;unique"`
	Whiteboard string    `json:"whiteboard" gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time `json:"created_at" gorm:"type:datetime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"type:datetime"`
}

// Prompt is a text snippet with a workflow status. OrderNumber positions the
// prompt within the list it was last reordered in; new prompts are appended to
// the end of their status group.
type Prompt struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Status      string    `json:"status" gorm:"type:text;not null;default:draft"`
	Content     *string   `json:"content,omitempty" gorm:"type:text"`
	ProjectID   *uint     `json:"project_id" gorm:"index"`
	ProjectName string    `json:"project_name,omitempty" gorm:"->;-:migration"`
	OrderNumber int       `json:"order_number" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:datetime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"type:datetime"`
}

// Setting is an opaque key/value pair with no cross-entity invariants.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;type:text"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:datetime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:datetime"`
}

// Item is the legacy record set kept for backward compatibility. It is
// logically independent of projects and prompts.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:datetime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"type:datetime"`
}
