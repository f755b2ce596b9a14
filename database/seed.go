package database

import (
	"log"
	"olympic_ticketing/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("paris2024"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.User{
		Email:           "admin@olympic-tickets.fr",
		FirstName:       "Site",
		LastName:        "Administrator",
		Password:        string(bytes),
		RegistrationKey: uuid.NewString(),
		IsStaff:         true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}

	offers := []model.Offer{
		{
			Name:        "Solo",
			Seats:       1,
			Price:       decimal.RequireFromString("25.00"),
			Description: "One seat to attend an Olympic event.",
			IsActive:    true,
		},
		{
			Name:        "Duo",
			Seats:       2,
			Price:       decimal.RequireFromString("40.00"),
			Description: "Two seats side by side, ideal for couples or friends.",
			IsActive:    true,
		},
		{
			Name:        "Familiale",
			Seats:       4,
			Price:       decimal.RequireFromString("70.00"),
			Description: "Four seats together for the whole family.",
			IsActive:    true,
		},
	}

	for _, offer := range offers {
		offer.Slug = slug.Make(offer.Name)
		if err := db.Where(model.Offer{Name: offer.Name}).FirstOrCreate(&offer).Error; err != nil {
			log.Println("failed to seed offer:", offer.Name, "error:", err)
		}
	}
}
