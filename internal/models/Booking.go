package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ParseBookingStatus rejects anything outside the four known values.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// bookingTransitions is the admin triage flow: a pending lead is either
// confirmed or cancelled, a confirmed booking either completes or is
// cancelled. Cancelled and completed are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCancelled: {},
	BookingCompleted: {},
}

// CanTransitionTo reports whether the triage flow allows moving to next.
// Re-setting the current status is allowed so retried requests stay
// idempotent.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a lead expressing interest in a package and/or vehicle.
// Either reference, both, or neither may be set.
type Booking struct {
	ID            string        `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerName  string        `json:"customerName" gorm:"not null"`
	Email         string        `json:"email" gorm:"not null"`
	Phone         string        `json:"phone" gorm:"not null"`
	PackageID     *string       `json:"packageId" gorm:"type:uuid"`
	VehicleID     *string       `json:"vehicleId" gorm:"type:uuid"`
	Message       string        `json:"message"`
	PreferredDate *time.Time    `json:"preferredDate,omitempty" gorm:"type:date"`
	GuestCount    *int          `json:"guestCount,omitempty"`
	InquiryKind   string        `json:"inquiryKind,omitempty"`
	Status        BookingStatus `json:"status" gorm:"not null;default:pending"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	Package *Package `json:"-" gorm:"foreignKey:PackageID"`
	Vehicle *Vehicle `json:"-" gorm:"foreignKey:VehicleID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
