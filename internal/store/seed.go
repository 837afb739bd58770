package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"gleamgallery/internal/models"
)

// The catalog is re-seeded from these fixtures on every cold start.
// Durability across restarts is an explicit non-goal.

func SeedCategories() []models.Category {
	return []models.Category{
		{
			ID:          "cat1",
			Name:        "Necklaces",
			ImageURL:    "https://placehold.co/400x300.png",
			Description: "Adorn your neck with our stunning collection of necklaces, from delicate pendants to statement pieces.",
		},
		{
			ID:          "cat2",
			Name:        "Rings",
			ImageURL:    "https://placehold.co/400x300.png",
			Description: "Find the perfect ring to symbolize love, commitment, or simply to elevate your style.",
		},
		{
			ID:          "cat3",
			Name:        "Earrings",
			ImageURL:    "https://placehold.co/400x300.png",
			Description: "From elegant studs to glamorous drops, our earrings are designed to make you shine.",
		},
		{
			ID:          "cat4",
			Name:        "Bracelets",
			ImageURL:    "https://placehold.co/400x300.png",
			Description: "Grace your wrist with our exquisite bracelets, perfect for any occasion.",
		},
	}
}

func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "prod1",
			Name:        "Seraphina Diamond Necklace",
			Description: "A breathtaking platinum necklace featuring a radiant-cut diamond, surrounded by a halo of smaller gems. Perfect for gala events.",
			Price:       2500,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Necklaces",
			Material:    "Platinum",
			Gemstones:   "Diamond, Sapphire",
			Style:       "Classic",
			Occasion:    "Gala",
		},
		{
			ID:          "prod2",
			Name:        "Azure Dream Ring",
			Description: "A mesmerizing 18k gold ring showcasing a stunning oval sapphire, flanked by two pear-shaped diamonds. Ideal for engagements or anniversaries.",
			Price:       1800,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Rings",
			Material:    "Gold",
			Gemstones:   "Sapphire, Diamond",
			Style:       "Vintage",
			Occasion:    "Engagement",
		},
		{
			ID:          "prod3",
			Name:        "Emerald Envy Earrings",
			Description: "Elegant drop earrings crafted from white gold, adorned with vibrant emeralds and sparkling diamond accents. Perfect for adding a touch of color to your evening wear.",
			Price:       1200,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Earrings",
			Material:    "White Gold",
			Gemstones:   "Emerald, Diamond",
			Style:       "Elegant",
			Occasion:    "Evening Wear",
		},
		{
			ID:          "prod4",
			Name:        "Ruby Radiance Bracelet",
			Description: "A stunning rose gold bracelet featuring a line of brilliant rubies, perfect for a bold statement.",
			Price:       2200,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Bracelets",
			Material:    "Rose Gold",
			Gemstones:   "Ruby",
			Style:       "Modern",
			Occasion:    "Party",
		},
		{
			ID:          "prod5",
			Name:        "Celestial Pearl Pendant",
			Description: "A delicate silver chain holding a luminous freshwater pearl, perfect for everyday elegance.",
			Price:       350,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Necklaces",
			Material:    "Silver",
			Gemstones:   "Pearl",
			Style:       "Minimalist",
			Occasion:    "Everyday",
		},
		{
			ID:          "prod6",
			Name:        "Golden Knot Ring",
			Description: "A simple yet elegant 14k gold ring designed in a timeless knot motif. Suitable for daily wear.",
			Price:       450,
			ImageURL:    "https://placehold.co/600x400.png",
			Category:    "Rings",
			Material:    "Gold",
			Gemstones:   "None",
			Style:       "Classic",
			Occasion:    "Everyday",
		},
	}
}

// SeedUsers builds the pre-existing accounts: the admin back-office user
// and a demo customer. Passwords are bcrypt-hashed at startup.
func SeedUsers() ([]models.User, error) {
	accounts := []struct {
		id       string
		username string
		password string
		role     models.UserRole
	}{
		{"user-admin", "admin", "adminpassword", models.RoleAdmin},
		{"user-test", "testuser", "testpassword", models.RoleUser},
	}

	users := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing seed password for %s: %w", a.username, err)
		}
		users = append(users, models.User{
			ID:           a.id,
			Username:     a.username,
			PasswordHash: string(hash),
			Role:         string(a.role),
		})
	}
	return users, nil
}
