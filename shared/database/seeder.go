package database

import (
	"log"

	"gamestore-backend/shared/config"
	"gamestore-backend/shared/database/models"
	utils "gamestore-backend/shared/utils/auth"
	"gamestore-backend/shared/utils/identifier"
	"gamestore-backend/shared/utils/money"
)

// SeedDatabase seeds the database with initial data
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	if err := CreateAdminFromConfig(); err != nil {
		return err
	}

	gamesCreated, err := seedSampleGames()
	if err != nil {
		return err
	}

	if gamesCreated > 0 {
		log.Printf("✅ Database seeding completed (%d games created)", gamesCreated)
	} else {
		log.Println("✅ Database seed data is up to date")
	}

	return nil
}

// CreateAdminFromConfig creates the admin account using config values
func CreateAdminFromConfig() error {
	cfg := config.GetConfig()
	return CreateAdmin(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
}

// CreateAdmin creates an admin user if one does not already exist
func CreateAdmin(name, email, password string) error {
	var existingUser models.User
	if err := DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		log.Println("Admin already exists")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       identifier.New(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin created: %s", email)
	return nil
}

// seedSampleGames creates a starter catalog for fresh environments
func seedSampleGames() (int, error) {
	samples := []struct {
		name        string
		description string
		price       string
	}{
		{"Starfall Odyssey", "Open world space exploration with a living economy", "59.90"},
		{"Dungeon Tactics", "Turn based tactics in procedurally generated dungeons", "29.99"},
		{"Neon Drift", "Arcade racer with synthwave soundtrack", "19.50"},
	}

	created := 0
	for _, sample := range samples {
		var existing models.Game
		result := DB.Where("name = ?", sample.name).First(&existing)
		if result.Error == nil {
			continue
		}

		price, err := money.ToMinorUnits(sample.price)
		if err != nil {
			return created, err
		}

		game := models.Game{
			ID:          identifier.New(),
			Name:        sample.name,
			Description: sample.description,
			Price:       price,
		}

		if err := DB.Create(&game).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
