package seed

import (
	logrus "github.com/sirupsen/logrus"

	"safari_tours/internal/models"
	"safari_tours/internal/storage"
)

// Run populates empty catalog collections with starter content so a
// fresh install renders a usable site. Collections that already have
// rows are left alone.
func Run(store storage.Store) error {
	if err := seedVehicles(store); err != nil {
		return err
	}
	if err := seedPackages(store); err != nil {
		return err
	}
	return seedPhotos(store)
}

func seedVehicles(store storage.Store) error {
	existing, err := store.Vehicles()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	logrus.Info("seeding vehicles")

	vehicles := []models.Vehicle{
		{
			Name:        "Suzuki Alto",
			Description: "Compact and efficient, perfect for city tours or solo travelers on a budget.",
			Capacity:    "3 Passengers",
			Features:    models.StringList{"Air Conditioning", "Compact", "Budget Friendly"},
			Status:      "available",
		},
		{
			Name:        "Toyota Premio",
			Description: "Comfortable sedan offering a smooth ride for small families or business travelers.",
			Capacity:    "4 Passengers",
			Features:    models.StringList{"Air Conditioning", "Comfortable Seating", "Ample Trunk Space"},
			Status:      "available",
		},
		{
			Name:        "Toyota Noah",
			Description: "Spacious minivan ideal for group safaris or family trips, offering excellent visibility.",
			Capacity:    "7 Passengers",
			Features:    models.StringList{"Spacious Interior", "Air Conditioning", "Perfect for Groups", "Good Ground Clearance"},
			Status:      "available",
		},
	}
	for i := range vehicles {
		if err := store.CreateVehicle(&vehicles[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedPackages(store storage.Store) error {
	existing, err := store.Packages()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	logrus.Info("seeding packages")

	packages := []models.Package{
		{
			Name:        "Maasai Mara Experience",
			Description: "Experience the magic of the Maasai Mara. Witness the Great Migration and enjoy luxury camping.",
			Duration:    "3 Days, 2 Nights",
			Price:       "Ksh 150,000",
			Itinerary: models.StringList{
				"Day 1: Arrival and Evening Game Drive",
				"Day 2: Full Day Game Drive & Sundowner",
				"Day 3: Morning Game Drive and Departure",
			},
			ImageUrl:  "https://images.unsplash.com/photo-1516426122078-c23e76319801?q=80&w=2068&auto=format&fit=crop",
			IsPopular: true,
		},
		{
			Name:        "Amboseli & Tsavo Adventure",
			Description: "Iconic views of Mount Kilimanjaro and massive elephant herds in this dual-park adventure.",
			Duration:    "5 Days, 4 Nights",
			Price:       "Ksh 230,000",
			Itinerary: models.StringList{
				"Day 1-2: Amboseli Exploration",
				"Day 3: Transfer to Tsavo West",
				"Day 4: Tsavo Game Drives",
				"Day 5: Departure",
			},
			ImageUrl:  "https://images.unsplash.com/photo-1521651201144-634f700b36ef?q=80&w=2070&auto=format&fit=crop",
			IsPopular: false,
		},
	}
	for i := range packages {
		if err := store.CreatePackage(&packages[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedPhotos(store storage.Store) error {
	existing, err := store.Photos()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	logrus.Info("seeding gallery photos")

	photos := []models.SafariPhoto{
		{
			Title:       "Lion Pride at Sunset",
			Description: "Magnificent lion pride resting during golden hour in Maasai Mara",
			ImageUrl:    "https://images.unsplash.com/photo-1546182990-dffeafbe841d?w=800&auto=format&fit=crop",
			Category:    "Wildlife",
			Location:    "Maasai Mara, Kenya",
			IsFeatured:  true,
		},
		{
			Title:       "Elephant Herd at Amboseli",
			Description: "Large elephant family with Mount Kilimanjaro in the background",
			ImageUrl:    "https://images.unsplash.com/photo-1557050543-4d5f4e07ef46?w=800&auto=format&fit=crop",
			Category:    "Wildlife",
			Location:    "Amboseli National Park",
			IsFeatured:  true,
		},
		{
			Title:       "Hot Air Balloon Safari",
			Description: "Early morning balloon ride over the savannah",
			ImageUrl:    "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800&auto=format&fit=crop",
			Category:    "Adventure",
			Location:    "Maasai Mara",
			IsFeatured:  false,
		},
	}
	for i := range photos {
		if err := store.CreatePhoto(&photos[i]); err != nil {
			return err
		}
	}
	return nil
}
