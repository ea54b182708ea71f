package storage

import (
	"errors"

	"gorm.io/gorm"

	"safari_tours/internal/models"
)

// Bookings

func (s *GormStore) Bookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) Booking(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) CreateBooking(b *models.Booking) error {
	return s.db.Create(b).Error
}

func (s *GormStore) UpdateBookingStatus(id string, status models.BookingStatus) (*models.Booking, error) {
	booking, err := s.Booking(id)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *GormStore) DeleteBooking(id string) error {
	return s.deleteRow(&models.Booking{}, id)
}

// Contacts

func (s *GormStore) Contacts() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *GormStore) CreateContact(c *models.Contact) error {
	return s.db.Create(c).Error
}

func (s *GormStore) MarkContactRead(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if contact.IsRead {
		return &contact, nil
	}
	contact.IsRead = true
	if err := s.db.Model(&contact).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *GormStore) DeleteContact(id string) error {
	return s.deleteRow(&models.Contact{}, id)
}
