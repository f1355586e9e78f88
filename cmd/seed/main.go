package main

import (
	"log"
	"os"

	"restobot-be/internal/model"
	"restobot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type menuSeed struct {
	Name        string
	Description string
	DietType    string
	Price       float64
	Ratings     []int
}

type restaurantSeed struct {
	Name       string
	Cuisine    string
	City       string
	Area       string
	PriceRange string
	Rating     float64
	Menu       []menuSeed
}

var restaurants = []restaurantSeed{
	{
		Name: "Pizza Palace", Cuisine: "Italian", City: "Mumbai", Area: "Bandra", PriceRange: "mid", Rating: 4.5,
		Menu: []menuSeed{
			{Name: "Margherita Pizza", Description: "Classic tomato, basil and mozzarella", DietType: "vegetarian", Price: 349, Ratings: []int{5, 4, 5}},
			{Name: "Pepperoni Pizza", Description: "Loaded with pepperoni and cheese", DietType: "non-vegetarian", Price: 449, Ratings: []int{4, 4}},
			{Name: "Garlic Bread", Description: "Toasted with herb butter", DietType: "vegetarian", Price: 149, Ratings: []int{4}},
		},
	},
	{
		Name: "Spice Garden", Cuisine: "Indian", City: "Mumbai", Area: "Andheri", PriceRange: "budget", Rating: 4.2,
		Menu: []menuSeed{
			{Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", DietType: "vegetarian", Price: 279, Ratings: []int{5, 5, 4}},
			{Name: "Chicken Biryani", Description: "Fragrant basmati rice with spiced chicken", DietType: "non-vegetarian", Price: 329, Ratings: []int{5, 4, 5, 5}},
			{Name: "Dal Tadka", Description: "Yellow lentils tempered with ghee", DietType: "vegetarian", Price: 189, Ratings: []int{4, 3}},
			{Name: "Vegan Thali", Description: "Seasonal vegetables, rice and roti", DietType: "vegan", Price: 249, Ratings: []int{4, 4}},
		},
	},
	{
		Name: "Dragon Wok", Cuisine: "Chinese", City: "Pune", Area: "Koregaon Park", PriceRange: "mid", Rating: 4.0,
		Menu: []menuSeed{
			{Name: "Veg Hakka Noodles", Description: "Stir-fried noodles with vegetables", DietType: "vegetarian", Price: 219, Ratings: []int{4, 4}},
			{Name: "Kung Pao Chicken", Description: "Spicy stir-fry with peanuts", DietType: "non-vegetarian", Price: 339, Ratings: []int{4, 5}},
			{Name: "Spring Rolls", Description: "Crispy vegetable rolls", DietType: "vegan", Price: 169, Ratings: []int{3, 4}},
		},
	},
	{
		Name: "Sakura Sushi", Cuisine: "Japanese", City: "Bengaluru", Area: "Indiranagar", PriceRange: "premium", Rating: 4.7,
		Menu: []menuSeed{
			{Name: "Salmon Nigiri", Description: "Fresh salmon over seasoned rice", DietType: "non-vegetarian", Price: 549, Ratings: []int{5, 5}},
			{Name: "Avocado Maki", Description: "Avocado rolls with sesame", DietType: "vegan", Price: 399, Ratings: []int{4, 5}},
			{Name: "Miso Soup", Description: "Traditional soybean soup", DietType: "vegetarian", Price: 199, Ratings: []int{4}},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo user...")
	demoUser := seedUser(db)

	color.Cyan("Seeding restaurants and menus...")
	for _, r := range restaurants {
		seedRestaurant(db, r, demoUser.Id)
		color.Green("  ✔ %s (%s, %s)", r.Name, r.Cuisine, r.City)
	}

	color.Green("✅ Seed complete: %d restaurants", len(restaurants))
}

func seedUser(db *gorm.DB) *model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: failed to hash demo password: %v", err)
		os.Exit(1)
	}

	user := &model.User{Name: "Demo User", Email: "demo@example.com", PasswordHash: string(hash)}
	var existing model.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return &existing
	}
	if err := db.Create(user).Error; err != nil {
		color.Red("Error: failed to create demo user: %v", err)
		os.Exit(1)
	}
	return user
}

func seedRestaurant(db *gorm.DB, seed restaurantSeed, reviewerID uint) {
	var existing model.Restaurant
	if err := db.Where("name = ?", seed.Name).First(&existing).Error; err == nil {
		return // already seeded
	}

	restaurant := &model.Restaurant{
		Name:       seed.Name,
		Cuisine:    seed.Cuisine,
		City:       seed.City,
		Area:       seed.Area,
		PriceRange: seed.PriceRange,
		Rating:     seed.Rating,
	}
	if err := db.Create(restaurant).Error; err != nil {
		color.Red("Error: failed to create restaurant %s: %v", seed.Name, err)
		os.Exit(1)
	}

	for _, m := range seed.Menu {
		item := &model.MenuItem{
			RestaurantId: restaurant.Id,
			Name:         m.Name,
			Description:  m.Description,
			DietType:     m.DietType,
			Price:        m.Price,
		}
		if err := db.Create(item).Error; err != nil {
			color.Red("Error: failed to create menu item %s: %v", m.Name, err)
			os.Exit(1)
		}
		for _, rating := range m.Ratings {
			review := &model.ItemReview{MenuItemId: item.Id, UserId: reviewerID, Rating: rating, Comment: ""}
			if err := db.Create(review).Error; err != nil {
				color.Red("Error: failed to create review for %s: %v", m.Name, err)
				os.Exit(1)
			}
		}
	}
}
