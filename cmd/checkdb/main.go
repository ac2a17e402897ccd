package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portal/internal/app/ds"
	"portal/internal/app/dsn"
)

// Небольшая утилита для проверки содержимого базы
func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var categories []ds.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		log.Fatal("Failed to get categories:", err)
	}

	fmt.Println("Categories in database:")
	for _, category := range categories {
		var count int64
		db.Model(&ds.Content{}).Where("category_id = ?", category.ID).Count(&count)
		fmt.Printf("Slug: %s, Name: %s, AllowedRoles: %q, Content: %d\n",
			category.Slug, category.Name, category.AllowedRoles, count)
	}

	var processes []ds.BusinessProcess
	if err := db.Preload("Steps").Find(&processes).Error; err != nil {
		log.Fatal("Failed to get processes:", err)
	}

	fmt.Println("Business processes in database:")
	for _, process := range processes {
		fmt.Printf("ID: %s, Name: %s, Steps: %d\n", process.ID, process.Name, len(process.Steps))
	}
}
