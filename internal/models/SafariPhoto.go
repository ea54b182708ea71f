package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SafariPhoto struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	ImageUrl    string     `json:"imageUrl" gorm:"not null"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	TakenDate   *time.Time `json:"takenDate,omitempty" gorm:"type:date"`
	IsFeatured  bool       `json:"isFeatured" gorm:"default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *SafariPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
