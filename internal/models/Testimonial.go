package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is user-generated content submitted from the public
// "share your experience" form. Rating stays a string to match the
// existing database column.
type Testimonial struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	ClientName string    `json:"clientName" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	Rating     string    `json:"rating" gorm:"not null"`
	ImageUrl   string    `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
