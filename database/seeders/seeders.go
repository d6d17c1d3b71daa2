package seeders

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitchef-backend/constants"
	"fitchef-backend/logger"
	"fitchef-backend/models/admin"
	"fitchef-backend/models/agent"
	"fitchef-backend/models/chef"
	"fitchef-backend/models/dish"

	"github.com/shopspring/decimal"
)

// SeedAll inserts the baseline records a fresh deployment needs: a default
// admin, a logistics operator, a demo chef, delivery agents and a starter
// menu. All inserts are idempotent.
func SeedAll(db *gorm.DB) error {
	if err := seedAdmins(db); err != nil {
		return err
	}
	if err := seedChefs(db); err != nil {
		return err
	}
	if err := seedAgents(db); err != nil {
		return err
	}
	if err := seedDishes(db); err != nil {
		return err
	}
	logger.Success("Seeding completed")
	return nil
}

func seedPassword(envKey, fallback string) (string, error) {
	password := os.Getenv(envKey)
	if password == "" {
		password = fallback
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed password: %w", err)
	}
	return string(hash), nil
}

func seedAdmins(db *gorm.DB) error {
	adminHash, err := seedPassword("SEED_ADMIN_PASSWORD", "admin123")
	if err != nil {
		return err
	}
	logisticsHash, err := seedPassword("SEED_LOGISTICS_PASSWORD", "logistics123")
	if err != nil {
		return err
	}

	accounts := []admin.Admin{
		{
			Email:        "admin@fitchef.in",
			PasswordHash: adminHash,
			FullName:     "FitChef Admin",
			Role:         constants.RoleAdmin.String(),
		},
		{
			Email:        "logistics@fitchef.in",
			PasswordHash: logisticsHash,
			FullName:     "FitChef Logistics",
			Role:         constants.RoleLogistics.String(),
		},
	}

	for i := range accounts {
		err := db.Where("email = ?", accounts[i].Email).
			FirstOrCreate(&accounts[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", accounts[i].Email, err)
		}
	}
	return nil
}

func seedChefs(db *gorm.DB) error {
	hash, err := seedPassword("SEED_CHEF_PASSWORD", "chef123")
	if err != nil {
		return err
	}

	kitchen := "HSR Layout, Bengaluru"
	specialty := "High-protein Indian"
	demo := chef.Chef{
		Email:           "chef@fitchef.in",
		PasswordHash:    hash,
		Name:            "Chef Arjun",
		Specialty:       &specialty,
		KitchenLocation: &kitchen,
		Status:          chef.StatusActive,
	}

	if err := db.Where("email = ?", demo.Email).FirstOrCreate(&demo).Error; err != nil {
		return fmt.Errorf("failed to seed chef: %w", err)
	}
	return nil
}

func seedAgents(db *gorm.DB) error {
	bike := "KA-01-AB-1234"
	scooter := "KA-05-CD-5678"
	agents := []agent.Agent{
		{Name: "Ravi Kumar", Mobile: "9876543210", VehicleNumber: &bike, AvailabilityStatus: agent.AvailabilityAvailable},
		{Name: "Suresh Patil", Mobile: "9876543211", VehicleNumber: &scooter, AvailabilityStatus: agent.AvailabilityAvailable},
	}

	for i := range agents {
		err := db.Where("mobile = ?", agents[i].Mobile).
			FirstOrCreate(&agents[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed agent %s: %w", agents[i].Name, err)
		}
	}
	return nil
}

func seedDishes(db *gorm.DB) error {
	str := func(s string) *string { return &s }
	intp := func(n int) *int { return &n }
	fl := func(f float64) *float64 { return &f }
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	dishes := []dish.Dish{
		{
			Name:        "Grilled Chicken Power Bowl",
			Description: str("Char-grilled chicken breast over quinoa with roasted vegetables."),
			Category:    str("Bowls"),
			BasePrice:   decimal.RequireFromString("299.00"),
			Calories:    intp(520), Protein: fl(42), Carbs: fl(38), Fats: fl(18),
			PortionSize: str("450g"), DietaryType: str("non-veg"),
			SubscriptionEligible: true, Available: true, Featured: true,
		},
		{
			Name:        "Paneer Tikka Protein Plate",
			Description: str("Tandoori paneer with millet pulao and mint chutney."),
			Category:    str("Plates"),
			BasePrice:   decimal.RequireFromString("259.00"),
			DiscountPrice: dec("229.00"),
			Calories:    intp(480), Protein: fl(28), Carbs: fl(42), Fats: fl(20),
			Allergens:   str("dairy"),
			PortionSize: str("400g"), DietaryType: str("veg"),
			SubscriptionEligible: true, Available: true,
		},
		{
			Name:        "Salmon Teriyaki Box",
			Description: str("Pan-seared salmon with brown rice and steamed greens."),
			Category:    str("Boxes"),
			BasePrice:   decimal.RequireFromString("399.00"),
			Calories:    intp(560), Protein: fl(38), Carbs: fl(44), Fats: fl(22),
			Allergens:   str("fish, soy"),
			PortionSize: str("420g"), DietaryType: str("non-veg"),
			Available:   true, Featured: true,
		},
		{
			Name:        "Vegan Buddha Bowl",
			Description: str("Chickpeas, sweet potato, kale and tahini dressing."),
			Category:    str("Bowls"),
			BasePrice:   decimal.RequireFromString("249.00"),
			Calories:    intp(430), Protein: fl(18), Carbs: fl(52), Fats: fl(16),
			Allergens:   str("sesame"),
			PortionSize: str("400g"), DietaryType: str("vegan"),
			SubscriptionEligible: true, Available: true,
		},
	}

	for i := range dishes {
		err := db.Where("name = ?", dishes[i].Name).
			FirstOrCreate(&dishes[i]).Error
		if err != nil {
			return fmt.Errorf("failed to seed dish %s: %w", dishes[i].Name, err)
		}
	}
	return nil
}
