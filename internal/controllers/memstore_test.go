package controllers

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

// memStore is an in-memory storage.Store used by the handler tests.
// Creation timestamps increase monotonically so ordering assertions are
// deterministic even within a single test run.
type memStore struct {
	clock        time.Time
	vehicles     []models.Vehicle
	packages     []models.Package
	photos       []models.SafariPhoto
	testimonials []models.Testimonial
	bookings     []models.Booking
	contacts     []models.Contact
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

// Vehicles

func (m *memStore) Vehicles() ([]models.Vehicle, error) {
	out := append([]models.Vehicle(nil), m.vehicles...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Vehicle(id string) (*models.Vehicle, error) {
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			v := m.vehicles[i]
			return &v, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateVehicle(v *models.Vehicle) error {
	v.ID = uuid.NewString()
	v.CreatedAt = m.tick()
	v.UpdatedAt = v.CreatedAt
	m.vehicles = append(m.vehicles, *v)
	return nil
}

func (m *memStore) UpdateVehicle(id string, upd storage.VehicleUpdate) (*models.Vehicle, error) {
	for i := range m.vehicles {
		if m.vehicles[i].ID != id {
			continue
		}
		v := &m.vehicles[i]
		if upd.Name != nil {
			v.Name = *upd.Name
		}
		if upd.Description != nil {
			v.Description = *upd.Description
		}
		if upd.Capacity != nil {
			v.Capacity = *upd.Capacity
		}
		if upd.Features != nil {
			v.Features = *upd.Features
		}
		if upd.ImageUrl != nil {
			v.ImageUrl = *upd.ImageUrl
		}
		if upd.Status != nil {
			v.Status = *upd.Status
		}
		v.UpdatedAt = m.tick()
		out := *v
		return &out, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) DeleteVehicle(id string) error {
	for _, b := range m.bookings {
		if b.VehicleID != nil && *b.VehicleID == id {
			return storage.ErrReferenced
		}
	}
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			m.vehicles = append(m.vehicles[:i], m.vehicles[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Packages

func (m *memStore) Packages() ([]models.Package, error) {
	out := append([]models.Package(nil), m.packages...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Package(id string) (*models.Package, error) {
	for i := range m.packages {
		if m.packages[i].ID == id {
			p := m.packages[i]
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreatePackage(p *models.Package) error {
	p.ID = uuid.NewString()
	p.CreatedAt = m.tick()
	p.UpdatedAt = p.CreatedAt
	m.packages = append(m.packages, *p)
	return nil
}

func (m *memStore) UpdatePackage(id string, upd storage.PackageUpdate) (*models.Package, error) {
	for i := range m.packages {
		if m.packages[i].ID != id {
			continue
		}
		p := &m.packages[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Duration != nil {
			p.Duration = *upd.Duration
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.Itinerary != nil {
			p.Itinerary = *upd.Itinerary
		}
		if upd.ImageUrl != nil {
			p.ImageUrl = *upd.ImageUrl
		}
		if upd.IsPopular != nil {
			p.IsPopular = *upd.IsPopular
		}
		p.UpdatedAt = m.tick()
		out := *p
		return &out, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) DeletePackage(id string) error {
	for _, b := range m.bookings {
		if b.PackageID != nil && *b.PackageID == id {
			return storage.ErrReferenced
		}
	}
	for i := range m.packages {
		if m.packages[i].ID == id {
			m.packages = append(m.packages[:i], m.packages[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Photos

func (m *memStore) Photos() ([]models.SafariPhoto, error) {
	out := append([]models.SafariPhoto(nil), m.photos...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) FeaturedPhotos() ([]models.SafariPhoto, error) {
	all, _ := m.Photos()
	var out []models.SafariPhoto
	for _, p := range all {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) Photo(id string) (*models.SafariPhoto, error) {
	for i := range m.photos {
		if m.photos[i].ID == id {
			p := m.photos[i]
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreatePhoto(p *models.SafariPhoto) error {
	p.ID = uuid.NewString()
	p.CreatedAt = m.tick()
	p.UpdatedAt = p.CreatedAt
	m.photos = append(m.photos, *p)
	return nil
}

func (m *memStore) UpdatePhoto(id string, upd storage.PhotoUpdate) (*models.SafariPhoto, error) {
	for i := range m.photos {
		if m.photos[i].ID != id {
			continue
		}
		p := &m.photos[i]
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.ImageUrl != nil {
			p.ImageUrl = *upd.ImageUrl
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.Location != nil {
			p.Location = *upd.Location
		}
		if upd.TakenDate != nil {
			p.TakenDate = upd.TakenDate
		}
		if upd.IsFeatured != nil {
			p.IsFeatured = *upd.IsFeatured
		}
		p.UpdatedAt = m.tick()
		out := *p
		return &out, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) DeletePhoto(id string) error {
	for i := range m.photos {
		if m.photos[i].ID == id {
			m.photos = append(m.photos[:i], m.photos[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Testimonials

func (m *memStore) Testimonials() ([]models.Testimonial, error) {
	out := append([]models.Testimonial(nil), m.testimonials...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) CreateTestimonial(t *models.Testimonial) error {
	t.ID = uuid.NewString()
	t.CreatedAt = m.tick()
	m.testimonials = append(m.testimonials, *t)
	return nil
}

func (m *memStore) DeleteTestimonial(id string) error {
	for i := range m.testimonials {
		if m.testimonials[i].ID == id {
			m.testimonials = append(m.testimonials[:i], m.testimonials[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Bookings

func (m *memStore) Bookings() ([]models.Booking, error) {
	out := append([]models.Booking(nil), m.bookings...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Booking(id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateBooking(b *models.Booking) error {
	b.ID = uuid.NewString()
	b.CreatedAt = m.tick()
	b.UpdatedAt = b.CreatedAt
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memStore) UpdateBookingStatus(id string, status models.BookingStatus) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			m.bookings[i].UpdatedAt = m.tick()
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) DeleteBooking(id string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Contacts

func (m *memStore) Contacts() ([]models.Contact, error) {
	out := append([]models.Contact(nil), m.contacts...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) CreateContact(c *models.Contact) error {
	c.ID = uuid.NewString()
	c.CreatedAt = m.tick()
	m.contacts = append(m.contacts, *c)
	return nil
}

func (m *memStore) MarkContactRead(id string) (*models.Contact, error) {
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts[i].IsRead = true
			c := m.contacts[i]
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) DeleteContact(id string) error {
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Counts

func (m *memStore) CountBookings() (int64, error) { return int64(len(m.bookings)), nil }
func (m *memStore) CountVehicles() (int64, error) { return int64(len(m.vehicles)), nil }
func (m *memStore) CountPackages() (int64, error) { return int64(len(m.packages)), nil }
func (m *memStore) CountContacts() (int64, error) { return int64(len(m.contacts)), nil }

var _ storage.Store = (*memStore)(nil)
