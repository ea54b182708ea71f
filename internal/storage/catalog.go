package storage

import (
	"errors"

	"gorm.io/gorm"

	"safari_tours/internal/models"
)

// Vehicles

func (s *GormStore) Vehicles() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *GormStore) Vehicle(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.Where("id = ?", id).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *GormStore) CreateVehicle(v *models.Vehicle) error {
	return s.db.Create(v).Error
}

func (s *GormStore) UpdateVehicle(id string, upd VehicleUpdate) (*models.Vehicle, error) {
	vehicle, err := s.Vehicle(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		vehicle.Name = *upd.Name
	}
	if upd.Description != nil {
		vehicle.Description = *upd.Description
	}
	if upd.Capacity != nil {
		vehicle.Capacity = *upd.Capacity
	}
	if upd.Features != nil {
		vehicle.Features = *upd.Features
	}
	if upd.ImageUrl != nil {
		vehicle.ImageUrl = *upd.ImageUrl
	}
	if upd.Status != nil {
		vehicle.Status = *upd.Status
	}
	if err := s.db.Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *GormStore) DeleteVehicle(id string) error {
	return s.deleteRow(&models.Vehicle{}, id)
}

// Packages

func (s *GormStore) Packages() ([]models.Package, error) {
	var packages []models.Package
	if err := s.db.Order("created_at DESC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *GormStore) Package(id string) (*models.Package, error) {
	var pkg models.Package
	if err := s.db.Where("id = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (s *GormStore) CreatePackage(p *models.Package) error {
	return s.db.Create(p).Error
}

func (s *GormStore) UpdatePackage(id string, upd PackageUpdate) (*models.Package, error) {
	pkg, err := s.Package(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		pkg.Name = *upd.Name
	}
	if upd.Description != nil {
		pkg.Description = *upd.Description
	}
	if upd.Duration != nil {
		pkg.Duration = *upd.Duration
	}
	if upd.Price != nil {
		pkg.Price = *upd.Price
	}
	if upd.Itinerary != nil {
		pkg.Itinerary = *upd.Itinerary
	}
	if upd.ImageUrl != nil {
		pkg.ImageUrl = *upd.ImageUrl
	}
	if upd.IsPopular != nil {
		pkg.IsPopular = *upd.IsPopular
	}
	if err := s.db.Save(pkg).Error; err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *GormStore) DeletePackage(id string) error {
	return s.deleteRow(&models.Package{}, id)
}

// Safari photos

func (s *GormStore) Photos() ([]models.SafariPhoto, error) {
	var photos []models.SafariPhoto
	if err := s.db.Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *GormStore) FeaturedPhotos() ([]models.SafariPhoto, error) {
	var photos []models.SafariPhoto
	if err := s.db.Where("is_featured = ?", true).Order("created_at DESC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *GormStore) Photo(id string) (*models.SafariPhoto, error) {
	var photo models.SafariPhoto
	if err := s.db.Where("id = ?", id).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (s *GormStore) CreatePhoto(p *models.SafariPhoto) error {
	return s.db.Create(p).Error
}

func (s *GormStore) UpdatePhoto(id string, upd PhotoUpdate) (*models.SafariPhoto, error) {
	photo, err := s.Photo(id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		photo.Title = *upd.Title
	}
	if upd.Description != nil {
		photo.Description = *upd.Description
	}
	if upd.ImageUrl != nil {
		photo.ImageUrl = *upd.ImageUrl
	}
	if upd.Category != nil {
		photo.Category = *upd.Category
	}
	if upd.Location != nil {
		photo.Location = *upd.Location
	}
	if upd.TakenDate != nil {
		photo.TakenDate = upd.TakenDate
	}
	if upd.IsFeatured != nil {
		photo.IsFeatured = *upd.IsFeatured
	}
	if err := s.db.Save(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *GormStore) DeletePhoto(id string) error {
	return s.deleteRow(&models.SafariPhoto{}, id)
}

// Testimonials

func (s *GormStore) Testimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (s *GormStore) CreateTestimonial(t *models.Testimonial) error {
	return s.db.Create(t).Error
}

func (s *GormStore) DeleteTestimonial(id string) error {
	return s.deleteRow(&models.Testimonial{}, id)
}
