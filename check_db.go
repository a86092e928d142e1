package main

import (
	"fmt"
	"log"

	"pos-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=padsi port=5432 sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var products []ds.Product
	err = db.Find(&products).Error
	if err != nil {
		log.Fatal("Failed to get products:", err)
	}

	fmt.Println("Products in database:")
	for _, product := range products {
		fmt.Printf("ID: %d, Name: %s, Quantity: %d\n", product.ID, product.Name, product.Quantity)
	}
}
