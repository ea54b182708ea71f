package storage

import (
	"errors"
	"time"

	"safari_tours/internal/models"
)

var (
	// ErrNotFound is returned when an id does not match any row.
	ErrNotFound = errors.New("record not found")
	// ErrReferenced is returned when a delete is rejected because
	// existing bookings still reference the row.
	ErrReferenced = errors.New("referenced by existing bookings")
)

// VehicleUpdate carries the admin's partial edit; nil fields are left
// untouched.
type VehicleUpdate struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Capacity    *string            `json:"capacity"`
	Features    *models.StringList `json:"features"`
	ImageUrl    *string            `json:"imageUrl"`
	Status      *string            `json:"status"`
}

type PackageUpdate struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Duration    *string            `json:"duration"`
	Price       *string            `json:"price"`
	Itinerary   *models.StringList `json:"itinerary"`
	ImageUrl    *string            `json:"imageUrl"`
	IsPopular   *bool              `json:"isPopular"`
}

type PhotoUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageUrl    *string    `json:"imageUrl"`
	Category    *string    `json:"category"`
	Location    *string    `json:"location"`
	TakenDate   *time.Time `json:"-"`
	IsFeatured  *bool      `json:"isFeatured"`
}

// Store is the persistence boundary for the catalog and the lead
// funnel. Handlers depend on this interface, never on gorm directly.
type Store interface {
	// Vehicles
	Vehicles() ([]models.Vehicle, error)
	Vehicle(id string) (*models.Vehicle, error)
	CreateVehicle(v *models.Vehicle) error
	UpdateVehicle(id string, upd VehicleUpdate) (*models.Vehicle, error)
	DeleteVehicle(id string) error

	// Packages
	Packages() ([]models.Package, error)
	Package(id string) (*models.Package, error)
	CreatePackage(p *models.Package) error
	UpdatePackage(id string, upd PackageUpdate) (*models.Package, error)
	DeletePackage(id string) error

	// Safari photos
	Photos() ([]models.SafariPhoto, error)
	FeaturedPhotos() ([]models.SafariPhoto, error)
	Photo(id string) (*models.SafariPhoto, error)
	CreatePhoto(p *models.SafariPhoto) error
	UpdatePhoto(id string, upd PhotoUpdate) (*models.SafariPhoto, error)
	DeletePhoto(id string) error

	// Testimonials
	Testimonials() ([]models.Testimonial, error)
	CreateTestimonial(t *models.Testimonial) error
	DeleteTestimonial(id string) error

	// Bookings
	Bookings() ([]models.Booking, error)
	Booking(id string) (*models.Booking, error)
	CreateBooking(b *models.Booking) error
	UpdateBookingStatus(id string, status models.BookingStatus) (*models.Booking, error)
	DeleteBooking(id string) error

	// Contacts
	Contacts() ([]models.Contact, error)
	CreateContact(c *models.Contact) error
	MarkContactRead(id string) (*models.Contact, error)
	DeleteContact(id string) error

	// Dashboard counts
	CountBookings() (int64, error)
	CountVehicles() (int64, error)
	CountPackages() (int64, error)
	CountContacts() (int64, error)
}
