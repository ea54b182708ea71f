package storage

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"safari_tours/internal/models"
)

// GormStore implements Store on top of a gorm Postgres connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// sqlState extracts the Postgres error code from either a lib/pq error
// or a driver error exposing SQLState (pgx).
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var stater interface{ SQLState() string }
	if errors.As(err, &stater) {
		return stater.SQLState()
	}
	return ""
}

// deleteRow removes one row by id, translating a foreign-key violation
// (Postgres 23503) into ErrReferenced and a missing row into ErrNotFound.
func (s *GormStore) deleteRow(model interface{}, id string) error {
	res := s.db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		if sqlState(res.Error) == "23503" {
			return ErrReferenced
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountBookings() (int64, error) {
	var n int64
	err := s.db.Model(&models.Booking{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountVehicles() (int64, error) {
	var n int64
	err := s.db.Model(&models.Vehicle{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountPackages() (int64, error) {
	var n int64
	err := s.db.Model(&models.Package{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountContacts() (int64, error) {
	var n int64
	err := s.db.Model(&models.Contact{}).Count(&n).Error
	return n, err
}
