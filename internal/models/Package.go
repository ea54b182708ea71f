package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Package is a tour package. Duration and price are free text because the
// site renders them verbatim and performs no currency math.
type Package struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	Duration    string     `json:"duration" gorm:"not null"`
	Price       string     `json:"price" gorm:"not null"`
	Itinerary   StringList `json:"itinerary" gorm:"type:jsonb;not null"`
	ImageUrl    string     `json:"imageUrl"`
	IsPopular   bool       `json:"isPopular" gorm:"default:false"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
