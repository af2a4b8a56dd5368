package config

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/constants"
	"hotelbooking/models"
	"hotelbooking/services"
	"hotelbooking/services/logger"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type seedUser struct {
	email, name, password, role string
}

var seedUsers = []seedUser{
	{"admin@hotel.com", "Administrator", "admin123", constants.RoleAdmin},
	{"user@test.com", "Mohamed Ahmed", "user123", constants.RoleUser},
}

const seedReviewComment = "Wonderful stay! Very clean hotel and helpful staff. Highly recommended."

// SeedHotels is the demo catalogue. Room prices scale with the hotel's stars.
func SeedHotels() []models.Hotel {
	hotels := []models.Hotel{
		{
			Name: "Burj Al Arab Hotel", City: "Dubai", Country: "UAE", Address: "Jumeirah Street", Stars: 5,
			Description: "Luxury five star hotel with sea views, world class facilities and award winning restaurants.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800",
				"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Spa", "Gym", "Restaurant", "Parking", "24/7 room service"},
			Latitude:  25.0657, Longitude: 55.1713,
		},
		{
			Name: "Golden Palm Hotel", City: "Riyadh", Country: "Saudi Arabia", Address: "King Faisal Street", Stars: 4,
			Description: "Modern hotel in the heart of the city with spacious rooms.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800",
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
				"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800",
			},
			Amenities: pq.StringArray{"Free WiFi", "Pool", "Restaurant", "Parking", "Room service"},
			Latitude:  24.7136, Longitude: 46.6753,
		},
		{
			Name: "Al Azhar Heritage Hotel", City: "Cairo", Country: "Egypt", Address: "Al Azhar District", Stars: 3,
			Description: "Boutique hotel in a historic quarter mixing traditional architecture with modern comfort.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1445019980597-93fa8acb246c?w=800",
				"https://images.unsplash.com/photo-1596436889106-be35e843f974?w=800",
			},
			Amenities: pq.StringArray{"Free WiFi", "Restaurant", "Free breakfast", "Parking"},
			Latitude:  30.0444, Longitude: 31.2357,
		},
		{
			Name: "Blue Beach Resort", City: "Alexandria", Country: "Egypt", Address: "North Coast", Stars: 5,
			Description: "Beach resort with a private beach and water sports, ideal for families and couples.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1584132967334-10e028bd69f7?w=800",
				"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800",
				"https://images.unsplash.com/photo-1568084680786-a84f91d1153c?w=800",
			},
			Amenities: pq.StringArray{"Private beach", "Free WiFi", "Pool", "Spa", "Gym", "Water sports", "Kids club"},
			Latitude:  31.2001, Longitude: 29.9187,
		},
		{
			Name: "City Business Hotel", City: "Amman", Country: "Jordan", Address: "Central Business District", Stars: 4,
			Description: "Hotel designed for business travellers with equipped meeting rooms.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1517840901100-8179e982acb7?w=800",
				"https://images.unsplash.com/photo-1495365200479-c4ed1d35e1aa?w=800",
			},
			Amenities: pq.StringArray{"High speed WiFi", "Meeting rooms", "Business center", "Restaurant", "Parking"},
			Latitude:  31.9454, Longitude: 35.9284,
		},
		{
			Name: "Green Oasis Hotel", City: "Tunis", Country: "Tunisia", Address: "Zitouna District", Stars: 3,
			Description: "Quiet eco friendly hotel surrounded by gardens.",
			Images: pq.StringArray{
				"https://images.unsplash.com/photo-1549294413-26f195200c16?w=800",
				"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800",
			},
			Amenities: pq.StringArray{"Free WiFi", "Garden", "Restaurant", "Free parking", "Free breakfast"},
			Latitude:  36.8065, Longitude: 10.1815,
		},
	}

	for i := range hotels {
		multiplier := priceMultiplier(hotels[i].Stars)
		for _, room := range seedRooms() {
			room.PricePerNight *= multiplier
			hotels[i].Rooms = append(hotels[i].Rooms, room)
		}
	}
	return hotels
}

func seedRooms() []models.Room {
	return []models.Room{
		{
			Name: "Single Room", Type: "Single", Capacity: 1, PricePerNight: 100,
			Description: "Comfortable room for the solo traveller with a single bed.",
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1618773928121-c32242e63f39?w=600"},
			Amenities:   pq.StringArray{"TV", "WiFi", "Desk", "Minibar"},
		},
		{
			Name: "Double Room", Type: "Double", Capacity: 2, PricePerNight: 150,
			Description: "Spacious room with a large double bed.",
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=600"},
			Amenities:   pq.StringArray{"TV", "WiFi", "Desk", "Minibar", "Coffee and drinks"},
		},
		{
			Name: "Family Suite", Type: "Suite", Capacity: 4, PricePerNight: 300,
			Description: "Two bedroom suite with a living room, ideal for families.",
			Images:      pq.StringArray{"https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=600"},
			Amenities:   pq.StringArray{"Two TVs", "WiFi", "Living room", "Kitchenette", "Minibar", "Balcony"},
		},
	}
}

func priceMultiplier(stars int) float64 {
	switch {
	case stars >= 5:
		return 2
	case stars == 4:
		return 1.5
	default:
		return 1
	}
}

// Seed creates the demo accounts and, on an empty catalogue, the demo hotels with a few reviews.
// Running it again changes nothing.
func Seed(ctx context.Context, db *gorm.DB, bcryptCost int, log logger.Logger) error {
	users := make(map[string]*models.User, len(seedUsers))
	for _, su := range seedUsers {
		var user models.User
		err := db.WithContext(ctx).Where("email = ?", su.email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashed, err := services.HashPassword(su.password, bcryptCost)
			if err != nil {
				return err
			}
			user = models.User{Email: su.email, Name: su.name, Password: hashed, Role: su.role}
			if err := db.WithContext(ctx).Create(&user).Error; err != nil {
				return fmt.Errorf("seed user %s: %w", su.email, err)
			}
			log.Info("seeded user", "email", su.email, "role", su.role)
		} else if err != nil {
			return err
		}
		users[su.email] = &user
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hotels := SeedHotels()
		if err := tx.Create(&hotels).Error; err != nil {
			return fmt.Errorf("seed hotels: %w", err)
		}
		reviewer := users["user@test.com"]
		for _, h := range hotels[:3] {
			review := models.Review{UserID: reviewer.ID, HotelID: h.ID, Rating: 5, Comment: seedReviewComment}
			if err := tx.Create(&review).Error; err != nil {
				return fmt.Errorf("seed review: %w", err)
			}
		}
		log.Info("seeded catalogue", "hotels", len(hotels), "rooms", len(hotels)*3, "reviews", 3)
		return nil
	})
}
